// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/domain/valueobject"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Year       int
	Month      int
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget View
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	// Validate amount
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	// Validate period
	if !valueobject.ValidMonth(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if input.Year < 1900 || input.Year > 3000 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetYear,
			fmt.Sprintf("invalid year %d", input.Year),
			nil,
		)
	}

	// Validate category exists and is visible to the user
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrBudgetCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if !category.VisibleTo(input.UserID) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrBudgetCategoryNotFound,
		)
	}

	// Reject a second budget for the same (user, category, year, month)
	exists, err := uc.budgetRepo.ExistsByUserCategoryPeriod(ctx, input.UserID, input.CategoryID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"a budget already exists for this category and month",
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Amount, input.Year, input.Month)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: NewView(budget, category),
	}, nil
}
