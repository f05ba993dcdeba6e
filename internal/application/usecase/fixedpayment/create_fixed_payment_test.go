// Package fixedpayment contains fixed-payment-related use cases.
package fixedpayment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

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

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func TestCreateFixedPaymentUseCase(t *testing.T) {
	userID := uuid.New()
	dueDate := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	setup := func() (*CreateFixedPaymentUseCase, *fakeFixedPaymentRepo) {
		paymentRepo := newFakeFixedPaymentRepo()
		userRepo := newFakeUserRepo()
		userRepo.users[userID] = &entity.User{ID: userID, Email: "payments@example.com", Active: true}
		return NewCreateFixedPaymentUseCase(paymentRepo, userRepo), paymentRepo
	}

	t.Run("creates a fixed payment", func(t *testing.T) {
		uc, paymentRepo := setup()

		output, err := uc.Execute(context.Background(), CreateFixedPaymentInput{
			UserID:      userID,
			Description: "Rent",
			Amount:      decimal.NewFromInt(1500),
			DueDate:     dueDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.FixedPayment.Description != "Rent" {
			t.Errorf("expected description 'Rent', got %q", output.FixedPayment.Description)
		}
		if len(paymentRepo.payments) != 1 {
			t.Errorf("expected 1 stored payment, got %d", len(paymentRepo.payments))
		}
	})

	t.Run("rejects a duplicate description and amount", func(t *testing.T) {
		uc, paymentRepo := setup()
		existing := entity.NewFixedPayment(userID, "Rent", decimal.NewFromInt(1500), dueDate)
		paymentRepo.payments[existing.ID] = existing

		_, err := uc.Execute(context.Background(), CreateFixedPaymentInput{
			UserID:      userID,
			Description: "Rent",
			Amount:      decimal.NewFromInt(1500),
			DueDate:     dueDate.AddDate(0, 1, 0),
		})

		var paymentErr *domainerror.FixedPaymentError
		if !errors.As(err, &paymentErr) || paymentErr.Code != domainerror.ErrCodeFixedPaymentDuplicate {
			t.Fatalf("expected duplicate error, got %v", err)
		}
	})

	t.Run("allows the same description with a different amount", func(t *testing.T) {
		uc, paymentRepo := setup()
		existing := entity.NewFixedPayment(userID, "Rent", decimal.NewFromInt(1500), dueDate)
		paymentRepo.payments[existing.ID] = existing

		_, err := uc.Execute(context.Background(), CreateFixedPaymentInput{
			UserID:      userID,
			Description: "Rent",
			Amount:      decimal.NewFromInt(1600),
			DueDate:     dueDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc, _ := setup()

		_, err := uc.Execute(context.Background(), CreateFixedPaymentInput{
			UserID:      userID,
			Description: "Rent",
			Amount:      decimal.Zero,
			DueDate:     dueDate,
		})

		var paymentErr *domainerror.FixedPaymentError
		if !errors.As(err, &paymentErr) || paymentErr.Code != domainerror.ErrCodeInvalidFixedPaymentAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})

	t.Run("rejects a missing description", func(t *testing.T) {
		uc, _ := setup()

		_, err := uc.Execute(context.Background(), CreateFixedPaymentInput{
			UserID:  userID,
			Amount:  decimal.NewFromInt(1500),
			DueDate: dueDate,
		})

		var paymentErr *domainerror.FixedPaymentError
		if !errors.As(err, &paymentErr) || paymentErr.Code != domainerror.ErrCodeMissingFixedPaymentFields {
			t.Fatalf("expected missing fields error, got %v", err)
		}
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		uc := NewCreateFixedPaymentUseCase(newFakeFixedPaymentRepo(), newFakeUserRepo())

		_, err := uc.Execute(context.Background(), CreateFixedPaymentInput{
			UserID:      uuid.New(),
			Description: "Rent",
			Amount:      decimal.NewFromInt(1500),
			DueDate:     dueDate,
		})

		var paymentErr *domainerror.FixedPaymentError
		if !errors.As(err, &paymentErr) || paymentErr.Code != domainerror.ErrCodeFixedPaymentUserNotFound {
			t.Fatalf("expected user not found error, got %v", err)
		}
	})
}
