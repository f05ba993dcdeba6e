// Package fixedpayment contains fixed-payment-related use cases.
package fixedpayment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
)

// ListFixedPaymentsInput represents the input for listing fixed payments.
type ListFixedPaymentsInput struct {
	UserID uuid.UUID
}

// ListFixedPaymentsOutput represents the output of listing fixed payments.
type ListFixedPaymentsOutput struct {
	FixedPayments []*entity.FixedPayment
}

// ListFixedPaymentsUseCase handles fixed payment listing logic.
type ListFixedPaymentsUseCase struct {
	fixedPaymentRepo adapter.FixedPaymentRepository
}

// NewListFixedPaymentsUseCase creates a new ListFixedPaymentsUseCase instance.
func NewListFixedPaymentsUseCase(fixedPaymentRepo adapter.FixedPaymentRepository) *ListFixedPaymentsUseCase {
	return &ListFixedPaymentsUseCase{
		fixedPaymentRepo: fixedPaymentRepo,
	}
}

// Execute lists the user's fixed payments.
func (uc *ListFixedPaymentsUseCase) Execute(ctx context.Context, input ListFixedPaymentsInput) (*ListFixedPaymentsOutput, error) {
	payments, err := uc.fixedPaymentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed payments: %w", err)
	}

	return &ListFixedPaymentsOutput{FixedPayments: payments}, nil
}
