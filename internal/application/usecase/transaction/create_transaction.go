// Package transaction contains transaction-related use cases.
package transaction

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

// CreateTransactionInput represents the input for transaction creation.
// Kind may be empty when a category is supplied; it is then derived from the
// category.
type CreateTransactionInput struct {
	UserID         uuid.UUID
	Amount         decimal.Decimal
	Kind           entity.TransactionKind
	CategoryID     *uuid.UUID
	Description    string
	Date           time.Time
	IsRecurring    bool
	FixedPaymentID *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo  adapter.TransactionRepository
	categoryRepo     adapter.CategoryRepository
	fixedPaymentRepo adapter.FixedPaymentRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	fixedPaymentRepo adapter.FixedPaymentRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:  transactionRepo,
		categoryRepo:     categoryRepo,
		fixedPaymentRepo: fixedPaymentRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	kind, category, err := resolveKindAndCategory(ctx, uc.categoryRepo, input.UserID, input.CategoryID, input.Kind)
	if err != nil {
		return nil, err
	}

	// A recurrence link must point at an owned fixed payment
	if input.FixedPaymentID != nil {
		payment, err := uc.fixedPaymentRepo.FindByID(ctx, *input.FixedPaymentID)
		if err != nil {
			if errors.Is(err, domainerror.ErrFixedPaymentNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnFixedPaymentNotFound,
					"fixed payment not found",
					domainerror.ErrFixedPaymentNotFoundForTransaction,
				)
			}
			return nil, fmt.Errorf("failed to find fixed payment: %w", err)
		}
		if payment.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnFixedPaymentNotFound,
				"fixed payment not found",
				domainerror.ErrFixedPaymentNotFoundForTransaction,
			)
		}
		input.IsRecurring = true
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Amount,
		kind,
		input.CategoryID,
		input.Description,
		input.Date,
		input.IsRecurring,
		input.FixedPaymentID,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionWithCategory{
			Transaction: transaction,
			Category:    category,
		},
	}, nil
}
