// Package report contains the aggregation logic for financial reports.
package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
)

func txn(kind entity.TransactionKind, amount string, date time.Time, category *entity.Category) *entity.TransactionWithCategory {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}

	var categoryID *uuid.UUID
	if category != nil {
		categoryID = &category.ID
	}

	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:         uuid.New(),
			UserID:     uuid.New(),
			Amount:     value,
			Kind:       kind,
			CategoryID: categoryID,
			Date:       date,
		},
		Category: category,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTotalsByCategory(t *testing.T) {
	groceries := &entity.Category{ID: uuid.New(), Name: "Groceries", Kind: entity.CategoryKindExpense}

	t.Run("sums amounts per category label", func(t *testing.T) {
		totals := TotalsByCategory([]*entity.TransactionWithCategory{
			txn(entity.TransactionKindExpense, "100.00", date(2026, time.January, 10), groceries),
			txn(entity.TransactionKindExpense, "50.00", date(2026, time.January, 20), groceries),
		})

		if len(totals) != 1 {
			t.Fatalf("expected 1 total, got %d", len(totals))
		}
		if totals[0].Label != "Groceries" {
			t.Errorf("expected label 'Groceries', got %q", totals[0].Label)
		}
		if !totals[0].Total.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected total 150, got %s", totals[0].Total)
		}
	})

	t.Run("uncategorized transactions fall back to the kind label", func(t *testing.T) {
		totals := TotalsByCategory([]*entity.TransactionWithCategory{
			txn(entity.TransactionKindIncome, "3000.00", date(2026, time.January, 5), nil),
		})

		if len(totals) != 1 {
			t.Fatalf("expected 1 total, got %d", len(totals))
		}
		if totals[0].Label != "Income" {
			t.Errorf("expected label 'Income', got %q", totals[0].Label)
		}
	})

	t.Run("empty input yields an empty slice", func(t *testing.T) {
		totals := TotalsByCategory(nil)
		if len(totals) != 0 {
			t.Errorf("expected no totals, got %d", len(totals))
		}
	})
}

func TestMonthlyTrend(t *testing.T) {
	t.Run("buckets by month sorted ascending and skips empty months", func(t *testing.T) {
		points := MonthlyTrend([]*entity.TransactionWithCategory{
			txn(entity.TransactionKindExpense, "200.00", date(2026, time.February, 15), nil),
			txn(entity.TransactionKindExpense, "500.00", date(2026, time.January, 15), nil),
			txn(entity.TransactionKindExpense, "300.00", date(2026, time.January, 20), nil),
		})

		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}
		if points[0].Month != 1 || points[0].MonthName != "January" {
			t.Errorf("expected first point January, got %d/%s", points[0].Month, points[0].MonthName)
		}
		if !points[0].Total.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected January total 800, got %s", points[0].Total)
		}
		if points[1].Month != 2 || !points[1].Total.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected February total 200, got %d/%s", points[1].Month, points[1].Total)
		}
	})

	t.Run("empty input yields an empty series", func(t *testing.T) {
		points := MonthlyTrend(nil)
		if len(points) != 0 {
			t.Errorf("expected no points, got %d", len(points))
		}
	})
}

func TestFinancialSummary(t *testing.T) {
	t.Run("partitions by kind and computes the balance", func(t *testing.T) {
		summary := FinancialSummary([]*entity.TransactionWithCategory{
			txn(entity.TransactionKindIncome, "3000.00", date(2026, time.January, 5), nil),
			txn(entity.TransactionKindExpense, "1200.00", date(2026, time.January, 10), nil),
			txn(entity.TransactionKindSavings, "500.00", date(2026, time.January, 15), nil),
		})

		if !summary.Income.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected income 3000, got %s", summary.Income)
		}
		if !summary.Expense.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected expense 1200, got %s", summary.Expense)
		}
		if !summary.Savings.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected savings 500, got %s", summary.Savings)
		}
		if !summary.Balance.Equal(decimal.NewFromInt(2300)) {
			t.Errorf("expected balance 2300, got %s", summary.Balance)
		}
	})

	t.Run("empty partitions report zero", func(t *testing.T) {
		summary := FinancialSummary(nil)

		if !summary.Income.Equal(decimal.Zero) {
			t.Errorf("expected zero income, got %s", summary.Income)
		}
		if !summary.Expense.Equal(decimal.Zero) {
			t.Errorf("expected zero expense, got %s", summary.Expense)
		}
		if !summary.Savings.Equal(decimal.Zero) {
			t.Errorf("expected zero savings, got %s", summary.Savings)
		}
		if !summary.Balance.Equal(decimal.Zero) {
			t.Errorf("expected zero balance, got %s", summary.Balance)
		}
	})
}
