// Package fixedpayment contains fixed-payment-related use cases.
package fixedpayment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// CreateFixedPaymentInput represents the input for fixed payment creation.
type CreateFixedPaymentInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
}

// CreateFixedPaymentOutput represents the output of fixed payment creation.
type CreateFixedPaymentOutput struct {
	FixedPayment *entity.FixedPayment
}

// CreateFixedPaymentUseCase handles fixed payment creation logic.
type CreateFixedPaymentUseCase struct {
	fixedPaymentRepo adapter.FixedPaymentRepository
	userRepo         adapter.UserRepository
}

// NewCreateFixedPaymentUseCase creates a new CreateFixedPaymentUseCase instance.
func NewCreateFixedPaymentUseCase(
	fixedPaymentRepo adapter.FixedPaymentRepository,
	userRepo adapter.UserRepository,
) *CreateFixedPaymentUseCase {
	return &CreateFixedPaymentUseCase{
		fixedPaymentRepo: fixedPaymentRepo,
		userRepo:         userRepo,
	}
}

// Execute performs the fixed payment creation. A payment whose description
// and amount both match an existing one for the same user is treated as a
// likely duplicate and rejected; the due date is not part of that check.
func (uc *CreateFixedPaymentUseCase) Execute(ctx context.Context, input CreateFixedPaymentInput) (*CreateFixedPaymentOutput, error) {
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

	duplicate, err := uc.fixedPaymentRepo.ExistsDuplicate(ctx, input.UserID, input.Description, input.Amount, uuid.Nil)
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

	payment := entity.NewFixedPayment(input.UserID, input.Description, input.Amount, input.DueDate)

	if err := uc.fixedPaymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create fixed payment: %w", err)
	}

	return &CreateFixedPaymentOutput{FixedPayment: payment}, nil
}
