// Package report contains reporting use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
)

// FinancialSummaryInput represents the input for the financial summary.
type FinancialSummaryInput struct {
	UserID uuid.UUID
}

// FinancialSummaryOutput represents the output of the financial summary.
type FinancialSummaryOutput struct {
	Summary Summary
}

// FinancialSummaryUseCase produces the income/expense/savings summary.
type FinancialSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewFinancialSummaryUseCase creates a new FinancialSummaryUseCase instance.
func NewFinancialSummaryUseCase(transactionRepo adapter.TransactionRepository) *FinancialSummaryUseCase {
	return &FinancialSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches all of the user's transactions and partitions them by kind.
// Kinds with no transactions report zero.
func (uc *FinancialSummaryUseCase) Execute(ctx context.Context, input FinancialSummaryInput) (*FinancialSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &FinancialSummaryOutput{Summary: FinancialSummary(transactions)}, nil
}
