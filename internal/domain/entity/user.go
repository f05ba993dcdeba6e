// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in LanaApp.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new active User.
func NewUser(name, email, passwordHash, phone string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        phone,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Deactivate soft-deletes the account. Deactivated users cannot log in;
// their records are kept for reporting history.
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now().UTC()
}
