// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Kind may be omitted when a category is provided; it is then derived from the
// category.
type CreateTransactionRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Kind           string          `json:"kind" binding:"omitempty,oneof=income expense savings"`
	CategoryID     *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Description    string          `json:"description" binding:"required,max=255"`
	Date           string          `json:"date" binding:"required"`
	IsRecurring    bool            `json:"is_recurring"`
	FixedPaymentID *string         `json:"fixed_payment_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Kind        string          `json:"kind" binding:"omitempty,oneof=income expense savings"`
	CategoryID  *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Description string          `json:"description" binding:"required,max=255"`
	Date        string          `json:"date" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses. The
// category label falls back to the capitalized kind when the transaction has
// no category.
type TransactionResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Amount         decimal.Decimal `json:"amount"`
	Kind           string          `json:"kind"`
	CategoryID     *string         `json:"category_id,omitempty"`
	CategoryLabel  string          `json:"category_label"`
	Description    string          `json:"description"`
	Date           string          `json:"date"`
	IsRecurring    bool            `json:"is_recurring"`
	FixedPaymentID *string         `json:"fixed_payment_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionWithCategory to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.TransactionWithCategory) TransactionResponse {
	response := TransactionResponse{
		ID:            t.Transaction.ID.String(),
		UserID:        t.Transaction.UserID.String(),
		Amount:        t.Transaction.Amount,
		Kind:          string(t.Transaction.Kind),
		CategoryLabel: t.CategoryLabel(),
		Description:   t.Transaction.Description,
		Date:          t.Transaction.Date.Format("2006-01-02"),
		IsRecurring:   t.Transaction.IsRecurring,
		CreatedAt:     t.Transaction.CreatedAt,
		UpdatedAt:     t.Transaction.UpdatedAt,
	}

	if t.Transaction.CategoryID != nil {
		idStr := t.Transaction.CategoryID.String()
		response.CategoryID = &idStr
	}

	if t.Transaction.FixedPaymentID != nil {
		idStr := t.Transaction.FixedPaymentID.String()
		response.FixedPaymentID = &idStr
	}

	return response
}

// ToTransactionListResponse converts a list of transactions to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}
