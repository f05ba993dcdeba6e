// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// BudgetFilter defines filter options for listing budgets.
type BudgetFilter struct {
	UserID     uuid.UUID
	Year       *int
	Month      *int
	CategoryID *uuid.UUID
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByFilter retrieves budgets with their categories for the given filter.
	FindByFilter(ctx context.Context, filter BudgetFilter) ([]*entity.BudgetWithCategory, error)

	// ExistsByUserCategoryPeriod checks if a budget exists for the
	// (user, category, year, month) tuple.
	ExistsByUserCategoryPeriod(ctx context.Context, userID, categoryID uuid.UUID, year, month int) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
