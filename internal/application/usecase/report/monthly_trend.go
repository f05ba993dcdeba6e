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

// MonthlyTrendInput represents the input for the monthly trend report.
type MonthlyTrendInput struct {
	UserID uuid.UUID
	Kind   entity.TransactionKind
	Year   *int
}

// MonthlyTrendOutput represents the output of the monthly trend report.
type MonthlyTrendOutput struct {
	Points []TrendPoint
}

// MonthlyTrendUseCase produces the per-month trend series for one kind.
type MonthlyTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewMonthlyTrendUseCase creates a new MonthlyTrendUseCase instance.
func NewMonthlyTrendUseCase(transactionRepo adapter.TransactionRepository) *MonthlyTrendUseCase {
	return &MonthlyTrendUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the user's transactions of the given kind, optionally
// restricted to one year, and buckets them by calendar month.
func (uc *MonthlyTrendUseCase) Execute(ctx context.Context, input MonthlyTrendInput) (*MonthlyTrendOutput, error) {
	if !entity.ValidTransactionKind(input.Kind) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportKind,
			fmt.Sprintf("unknown kind %q", input.Kind),
			domainerror.ErrInvalidReportKind,
		)
	}
	if input.Year != nil && (*input.Year < 1900 || *input.Year > 3000) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			fmt.Sprintf("invalid year %d", *input.Year),
			domainerror.ErrInvalidReportYear,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
		Kind:   &input.Kind,
		Year:   input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &MonthlyTrendOutput{Points: MonthlyTrend(transactions)}, nil
}
