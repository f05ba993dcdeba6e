// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a monthly cap for one category. At most one budget may exist per
// (user, category, year, month).
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Year       int
	Month      int // 1-12
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, year, month int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Year:       year,
		Month:      month,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateAmount replaces the cap and refreshes the update timestamp.
func (b *Budget) UpdateAmount(amount decimal.Decimal) {
	b.Amount = amount
	b.UpdatedAt = time.Now().UTC()
}

// BudgetWithCategory pairs a budget with its resolved category for
// enriched views.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}
