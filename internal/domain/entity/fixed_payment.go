// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedPayment is a recurring, user-declared obligation. Creation rejects a
// payment whose (description, amount) pair matches an existing one for the
// same user; the due date is not part of that duplicate key.
type FixedPayment struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFixedPayment creates a new FixedPayment entity.
func NewFixedPayment(userID uuid.UUID, description string, amount decimal.Decimal, dueDate time.Time) *FixedPayment {
	now := time.Now().UTC()

	return &FixedPayment{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Matches reports whether another payment looks like a duplicate of this
// one: same description and same amount, regardless of due date.
func (f *FixedPayment) Matches(description string, amount decimal.Decimal) bool {
	return f.Description == description && f.Amount.Equal(amount)
}
