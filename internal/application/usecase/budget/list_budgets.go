// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID     uuid.UUID
	Year       *int
	Month      *int
	CategoryID *uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []View
}

// ListBudgetsUseCase handles budget listing logic.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Month != nil && !valueobject.ValidMonth(*input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	results, err := uc.budgetRepo.FindByFilter(ctx, adapter.BudgetFilter{
		UserID:     input.UserID,
		Year:       input.Year,
		Month:      input.Month,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	views := make([]View, 0, len(results))
	for _, r := range results {
		views = append(views, NewView(r.Budget, r.Category))
	}

	return &ListBudgetsOutput{Budgets: views}, nil
}
