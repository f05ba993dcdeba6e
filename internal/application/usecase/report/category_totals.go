// Package report contains reporting use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// CategoryTotalsInput represents the input for the totals-by-category report.
type CategoryTotalsInput struct {
	UserID uuid.UUID
	Kind   entity.TransactionKind
}

// CategoryTotalsOutput represents the output of the totals-by-category report.
type CategoryTotalsOutput struct {
	Totals []CategoryTotal
}

// CategoryTotalsUseCase produces the totals-by-category report for one kind.
type CategoryTotalsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCategoryTotalsUseCase creates a new CategoryTotalsUseCase instance.
func NewCategoryTotalsUseCase(transactionRepo adapter.TransactionRepository) *CategoryTotalsUseCase {
	return &CategoryTotalsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the user's transactions of the given kind and aggregates
// them by category label.
func (uc *CategoryTotalsUseCase) Execute(ctx context.Context, input CategoryTotalsInput) (*CategoryTotalsOutput, error) {
	if !entity.ValidTransactionKind(input.Kind) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportKind,
			fmt.Sprintf("unknown kind %q", input.Kind),
			domainerror.ErrInvalidReportKind,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Kind:   &input.Kind,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &CategoryTotalsOutput{Totals: TotalsByCategory(transactions)}, nil
}
