// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateProfileRequest represents the request body for profile updates. Only
// the provided fields are changed.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=20"`
}
