// Package fixedpayment contains fixed-payment-related use cases.
package fixedpayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// UpdateFixedPaymentInput represents the input for updating a fixed payment.
type UpdateFixedPaymentInput struct {
	FixedPaymentID uuid.UUID
	UserID         uuid.UUID
	Description    string
	Amount         decimal.Decimal
	DueDate        time.Time
}

// UpdateFixedPaymentOutput represents the output of a fixed payment update.
type UpdateFixedPaymentOutput struct {
	FixedPayment *entity.FixedPayment
}

// UpdateFixedPaymentUseCase handles fixed payment update logic.
type UpdateFixedPaymentUseCase struct {
	fixedPaymentRepo adapter.FixedPaymentRepository
	userRepo         adapter.UserRepository
}

// NewUpdateFixedPaymentUseCase creates a new UpdateFixedPaymentUseCase instance.
func NewUpdateFixedPaymentUseCase(
	fixedPaymentRepo adapter.FixedPaymentRepository,
	userRepo adapter.UserRepository,
) *UpdateFixedPaymentUseCase {
	return &UpdateFixedPaymentUseCase{
		fixedPaymentRepo: fixedPaymentRepo,
		userRepo:         userRepo,
	}
}

// Execute updates a fixed payment scoped to the owning user, re-running the
// duplicate check against the user's other payments.
func (uc *UpdateFixedPaymentUseCase) Execute(ctx context.Context, input UpdateFixedPaymentInput) (*UpdateFixedPaymentOutput, error) {
	payment, err := uc.fixedPaymentRepo.FindByID(ctx, input.FixedPaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFixedPaymentNotFound) {
			return nil, domainerror.NewFixedPaymentError(
				domainerror.ErrCodeFixedPaymentNotFound,
				"fixed payment not found",
				domainerror.ErrFixedPaymentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find fixed payment: %w", err)
	}
	if payment.UserID != input.UserID {
		return nil, domainerror.NewFixedPaymentError(
			domainerror.ErrCodeFixedPaymentNotFound,
			"fixed payment not found",
			domainerror.ErrFixedPaymentNotFound,
		)
	}

	if input.Description == "" {
		return nil, domainerror.NewFixedPaymentError(
			domainerror.ErrCodeMissingFixedPaymentFields,
			"description is required",
			nil,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewFixedPaymentError(
			domainerror.ErrCodeInvalidFixedPaymentAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidFixedPaymentAmount,
		)
	}

	exists, err := uc.userRepo.ExistsByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewFixedPaymentError(
			domainerror.ErrCodeFixedPaymentUserNotFound,
			"user not found",
			domainerror.ErrFixedPaymentUserNotFound,
		)
	}

	duplicate, err := uc.fixedPaymentRepo.ExistsDuplicate(ctx, input.UserID, input.Description, input.Amount, payment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate fixed payment: %w", err)
	}
	if duplicate {
		return nil, domainerror.NewFixedPaymentError(
			domainerror.ErrCodeFixedPaymentDuplicate,
			"a fixed payment with this description and amount already exists",
			domainerror.ErrFixedPaymentDuplicate,
		)
	}

	payment.Description = input.Description
	payment.Amount = input.Amount
	payment.DueDate = input.DueDate
	payment.UpdatedAt = time.Now().UTC()

	if err := uc.fixedPaymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update fixed payment: %w", err)
	}

	return &UpdateFixedPaymentOutput{FixedPayment: payment}, nil
}
