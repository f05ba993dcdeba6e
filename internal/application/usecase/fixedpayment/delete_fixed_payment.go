// Package fixedpayment contains fixed-payment-related use cases.
package fixedpayment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// DeleteFixedPaymentInput represents the input for deleting a fixed payment.
type DeleteFixedPaymentInput struct {
	FixedPaymentID uuid.UUID
	UserID         uuid.UUID
}

// DeleteFixedPaymentUseCase handles fixed payment deletion logic.
type DeleteFixedPaymentUseCase struct {
	fixedPaymentRepo adapter.FixedPaymentRepository
}

// NewDeleteFixedPaymentUseCase creates a new DeleteFixedPaymentUseCase instance.
func NewDeleteFixedPaymentUseCase(fixedPaymentRepo adapter.FixedPaymentRepository) *DeleteFixedPaymentUseCase {
	return &DeleteFixedPaymentUseCase{
		fixedPaymentRepo: fixedPaymentRepo,
	}
}

// Execute deletes a fixed payment scoped to the owning user.
func (uc *DeleteFixedPaymentUseCase) Execute(ctx context.Context, input DeleteFixedPaymentInput) error {
	payment, err := uc.fixedPaymentRepo.FindByID(ctx, input.FixedPaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFixedPaymentNotFound) {
			return domainerror.NewFixedPaymentError(
				domainerror.ErrCodeFixedPaymentNotFound,
				"fixed payment not found",
				domainerror.ErrFixedPaymentNotFound,
			)
		}
		return fmt.Errorf("failed to find fixed payment: %w", err)
	}
	if payment.UserID != input.UserID {
		return domainerror.NewFixedPaymentError(
			domainerror.ErrCodeFixedPaymentNotFound,
			"fixed payment not found",
			domainerror.ErrFixedPaymentNotFound,
		)
	}

	if err := uc.fixedPaymentRepo.Delete(ctx, payment.ID); err != nil {
		return fmt.Errorf("failed to delete fixed payment: %w", err)
	}

	return nil
}
