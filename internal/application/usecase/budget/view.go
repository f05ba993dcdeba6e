// Package budget contains budget-related use cases.
package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
	"github.com/lanaapp/backend/internal/domain/valueobject"
)

// View is the enriched read projection of a budget: the stored fields plus
// the resolved category name and the localized month name.
type View struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Year         int
	Month        int
	MonthName    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewView builds the enriched projection for a budget and its category.
func NewView(b *entity.Budget, category *entity.Category) View {
	categoryName := ""
	if category != nil {
		categoryName = category.Name
	}

	return View{
		ID:           b.ID,
		UserID:       b.UserID,
		CategoryID:   b.CategoryID,
		CategoryName: categoryName,
		Amount:       b.Amount,
		Year:         b.Year,
		Month:        b.Month,
		MonthName:    valueobject.MonthName(b.Month),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
