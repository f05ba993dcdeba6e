// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	transaction, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.TransactionWithCategory{Transaction: transaction}, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	result := make([]*entity.TransactionWithCategory, 0)
	for _, transaction := range r.transactions {
		if transaction.UserID == filter.UserID {
			result = append(result, &entity.TransactionWithCategory{Transaction: transaction})
		}
	}
	return result, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	if _, ok := r.transactions[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
	findErr    error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
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

type fakeFixedPaymentRepo struct {
	payments map[uuid.UUID]*entity.FixedPayment
}

func newFakeFixedPaymentRepo() *fakeFixedPaymentRepo {
	return &fakeFixedPaymentRepo{payments: make(map[uuid.UUID]*entity.FixedPayment)}
}

func (r *fakeFixedPaymentRepo) Create(ctx context.Context, payment *entity.FixedPayment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakeFixedPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedPayment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, domainerror.ErrFixedPaymentNotFound
	}
	return payment, nil
}

func (r *fakeFixedPaymentRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedPayment, error) {
	result := make([]*entity.FixedPayment, 0)
	for _, payment := range r.payments {
		if payment.UserID == userID {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (r *fakeFixedPaymentRepo) ExistsDuplicate(ctx context.Context, userID uuid.UUID, description string, amount decimal.Decimal, excludeID uuid.UUID) (bool, error) {
	for _, payment := range r.payments {
		if payment.ID == excludeID {
			continue
		}
		if payment.UserID == userID && payment.Description == description && payment.Amount.Equal(amount) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFixedPaymentRepo) Update(ctx context.Context, payment *entity.FixedPayment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return domainerror.ErrFixedPaymentNotFound
	}
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakeFixedPaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.payments[id]; !ok {
		return domainerror.ErrFixedPaymentNotFound
	}
	delete(r.payments, id)
	return nil
}

func TestCreateTransactionUseCase(t *testing.T) {
	userID := uuid.New()
	testDate := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	setup := func() (*CreateTransactionUseCase, *fakeTransactionRepo, *fakeCategoryRepo, *fakeFixedPaymentRepo) {
		transactionRepo := newFakeTransactionRepo()
		categoryRepo := newFakeCategoryRepo()
		fixedPaymentRepo := newFakeFixedPaymentRepo()
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, fixedPaymentRepo)
		return uc, transactionRepo, categoryRepo, fixedPaymentRepo
	}

	t.Run("derives the kind from the category when omitted", func(t *testing.T) {
		uc, transactionRepo, categoryRepo, _ := setup()
		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, userID)
		categoryRepo.categories[category.ID] = category

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.NewFromInt(50),
			CategoryID:  &category.ID,
			Description: "Weekly groceries",
			Date:        testDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.Transaction.Kind != entity.TransactionKindExpense {
			t.Errorf("expected derived kind 'expense', got %q", output.Transaction.Transaction.Kind)
		}
		if len(transactionRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("rejects a kind that contradicts the category, citing both values", func(t *testing.T) {
		uc, _, categoryRepo, _ := setup()
		category := entity.NewCategory("Salary", entity.CategoryKindIncome, userID)
		categoryRepo.categories[category.ID] = category

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.NewFromInt(50),
			Kind:        entity.TransactionKindExpense,
			CategoryID:  &category.ID,
			Description: "Mismatched",
			Date:        testDate,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeCategoryKindMismatch {
			t.Fatalf("expected kind mismatch error, got %v", err)
		}
		if !strings.Contains(txnErr.Message, "expense") || !strings.Contains(txnErr.Message, "income") {
			t.Errorf("expected message to cite both kinds, got %q", txnErr.Message)
		}
	})

	t.Run("requires an explicit kind without a category", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.NewFromInt(50),
			Description: "No kind, no category",
			Date:        testDate,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeKindNotResolvable {
			t.Fatalf("expected kind not resolvable error, got %v", err)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.Zero,
			Kind:        entity.TransactionKindExpense,
			Description: "Free lunch",
			Date:        testDate,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})

	t.Run("rejects an overlong description", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.NewFromInt(50),
			Kind:        entity.TransactionKindExpense,
			Description: strings.Repeat("x", MaxDescriptionLength+1),
			Date:        testDate,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeDescriptionTooLong {
			t.Fatalf("expected description too long error, got %v", err)
		}
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		uc, _, categoryRepo, _ := setup()
		category := entity.NewCategory("Private", entity.CategoryKindExpense, uuid.New())
		categoryRepo.categories[category.ID] = category

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.NewFromInt(50),
			CategoryID:  &category.ID,
			Description: "Not mine",
			Date:        testDate,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
	})

	t.Run("links to an owned fixed payment and marks the transaction recurring", func(t *testing.T) {
		uc, transactionRepo, _, fixedPaymentRepo := setup()
		payment := entity.NewFixedPayment(userID, "Rent", decimal.NewFromInt(1500), testDate)
		fixedPaymentRepo.payments[payment.ID] = payment

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:         userID,
			Amount:         decimal.NewFromInt(1500),
			Kind:           entity.TransactionKindExpense,
			Description:    "January rent",
			Date:           testDate,
			FixedPaymentID: &payment.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.Transaction.IsRecurring {
			t.Error("expected transaction to be marked recurring")
		}
		if len(transactionRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("rejects a fixed payment owned by someone else", func(t *testing.T) {
		uc, _, _, fixedPaymentRepo := setup()
		payment := entity.NewFixedPayment(uuid.New(), "Rent", decimal.NewFromInt(1500), testDate)
		fixedPaymentRepo.payments[payment.ID] = payment

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:         userID,
			Amount:         decimal.NewFromInt(1500),
			Kind:           entity.TransactionKindExpense,
			Description:    "January rent",
			Date:           testDate,
			FixedPaymentID: &payment.ID,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnFixedPaymentNotFound {
			t.Fatalf("expected fixed payment not found error, got %v", err)
		}
	})

	t.Run("propagates category lookup failures instead of reporting not found", func(t *testing.T) {
		uc, _, categoryRepo, _ := setup()
		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, userID)
		categoryRepo.categories[category.ID] = category
		categoryRepo.findErr = errors.New("connection refused")

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			Amount:      decimal.NewFromInt(50),
			CategoryID:  &category.ID,
			Description: "Weekly groceries",
			Date:        testDate,
		})

		var txnErr *domainerror.TransactionError
		if errors.As(err, &txnErr) {
			t.Fatalf("expected a plain wrapped error, got domain error %v", txnErr)
		}
		if err == nil || !strings.Contains(err.Error(), "connection refused") {
			t.Fatalf("expected the repository failure to surface, got %v", err)
		}
	})
}
