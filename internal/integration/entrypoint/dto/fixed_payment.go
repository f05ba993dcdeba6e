// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// CreateFixedPaymentRequest represents the request body for fixed payment creation.
type CreateFixedPaymentRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     string          `json:"due_date" binding:"required"`
}

// UpdateFixedPaymentRequest represents the request body for fixed payment update.
type UpdateFixedPaymentRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     string          `json:"due_date" binding:"required"`
}

// FixedPaymentResponse represents a single fixed payment in API responses.
type FixedPaymentResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FixedPaymentListResponse represents the response for listing fixed payments.
type FixedPaymentListResponse struct {
	FixedPayments []FixedPaymentResponse `json:"fixed_payments"`
}

// ToFixedPaymentResponse converts a domain FixedPayment entity to a FixedPaymentResponse DTO.
func ToFixedPaymentResponse(payment *entity.FixedPayment) FixedPaymentResponse {
	return FixedPaymentResponse{
		ID:          payment.ID.String(),
		Description: payment.Description,
		Amount:      payment.Amount,
		DueDate:     payment.DueDate.Format("2006-01-02"),
		CreatedAt:   payment.CreatedAt,
		UpdatedAt:   payment.UpdatedAt,
	}
}

// ToFixedPaymentListResponse converts a list of fixed payments to FixedPaymentListResponse.
func ToFixedPaymentListResponse(payments []*entity.FixedPayment) FixedPaymentListResponse {
	responses := make([]FixedPaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = ToFixedPaymentResponse(payment)
	}
	return FixedPaymentListResponse{
		FixedPayments: responses,
	}
}
