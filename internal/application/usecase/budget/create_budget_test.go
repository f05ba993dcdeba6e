// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
	exists  bool
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return budget, nil
}

func (r *fakeBudgetRepo) FindByFilter(ctx context.Context, filter adapter.BudgetFilter) ([]*entity.BudgetWithCategory, error) {
	result := make([]*entity.BudgetWithCategory, 0)
	for _, budget := range r.budgets {
		if budget.UserID == filter.UserID {
			result = append(result, &entity.BudgetWithCategory{Budget: budget})
		}
	}
	return result, nil
}

func (r *fakeBudgetRepo) ExistsByUserCategoryPeriod(ctx context.Context, userID, categoryID uuid.UUID, year, month int) (bool, error) {
	return r.exists, nil
}

func (r *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error {
	if _, ok := r.budgets[budget.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.budgets[id]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.budgets, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	result := make([]*entity.Category, 0)
	for _, category := range r.categories {
		if category.VisibleTo(userID) {
			result = append(result, category)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepo) ExistsByNameForUser(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if category.Name == name && category.VisibleTo(userID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestCreateBudgetUseCase(t *testing.T) {
	userID := uuid.New()

	setup := func() (*CreateBudgetUseCase, *fakeBudgetRepo, *entity.Category) {
		budgetRepo := newFakeBudgetRepo()
		categoryRepo := newFakeCategoryRepo()
		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, userID)
		categoryRepo.categories[category.ID] = category
		return NewCreateBudgetUseCase(budgetRepo, categoryRepo), budgetRepo, category
	}

	t.Run("creates a budget for an owned category", func(t *testing.T) {
		uc, budgetRepo, category := setup()

		output, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:     userID,
			CategoryID: category.ID,
			Amount:     decimal.NewFromInt(600),
			Year:       2026,
			Month:      1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Budget.CategoryName != "Groceries" {
			t.Errorf("expected category name 'Groceries', got %q", output.Budget.CategoryName)
		}
		if output.Budget.MonthName != "January" {
			t.Errorf("expected month name 'January', got %q", output.Budget.MonthName)
		}
		if len(budgetRepo.budgets) != 1 {
			t.Errorf("expected 1 stored budget, got %d", len(budgetRepo.budgets))
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc, _, category := setup()

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:     userID,
			CategoryID: category.ID,
			Amount:     decimal.Zero,
			Year:       2026,
			Month:      1,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeInvalidBudgetAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		uc, _, category := setup()

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:     userID,
			CategoryID: category.ID,
			Amount:     decimal.NewFromInt(600),
			Year:       2026,
			Month:      13,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeInvalidBudgetMonth {
			t.Fatalf("expected invalid month error, got %v", err)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		uc, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:     userID,
			CategoryID: uuid.New(),
			Amount:     decimal.NewFromInt(600),
			Year:       2026,
			Month:      1,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		uc, _, _ := setup()
		otherCategory := entity.NewCategory("Private", entity.CategoryKindExpense, uuid.New())

		budgetRepo := newFakeBudgetRepo()
		categoryRepo := newFakeCategoryRepo()
		categoryRepo.categories[otherCategory.ID] = otherCategory
		uc = NewCreateBudgetUseCase(budgetRepo, categoryRepo)

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:     userID,
			CategoryID: otherCategory.ID,
			Amount:     decimal.NewFromInt(600),
			Year:       2026,
			Month:      1,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
	})

	t.Run("rejects a duplicate budget for the same period", func(t *testing.T) {
		uc, budgetRepo, category := setup()
		budgetRepo.exists = true

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:     userID,
			CategoryID: category.ID,
			Amount:     decimal.NewFromInt(600),
			Year:       2026,
			Month:      1,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetAlreadyExists {
			t.Fatalf("expected duplicate budget error, got %v", err)
		}
	})
}
