// Package report contains the aggregation logic that turns transaction
// records into category totals, monthly trend series, and financial
// summaries. The functions here are pure: they operate on records already
// fetched for one user and never touch storage.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
	"github.com/lanaapp/backend/internal/domain/valueobject"
)

// CategoryTotal is one (label, total) pair produced by TotalsByCategory.
type CategoryTotal struct {
	Label string
	Total decimal.Decimal
}

// TrendPoint is one month bucket produced by MonthlyTrend.
type TrendPoint struct {
	Month     int
	MonthName string
	Total     decimal.Decimal
}

// Summary is the three-way financial summary for a user.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Savings decimal.Decimal
	Balance decimal.Decimal
}

// TotalsByCategory groups transactions by their display label, summing
// amounts. Transactions without a category, or whose category has no name,
// are grouped under the title-cased kind. Order of the result is whatever
// the grouping produced; it carries no meaning.
func TotalsByCategory(transactions []*entity.TransactionWithCategory) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, t := range transactions {
		label := t.CategoryLabel()
		if _, ok := totals[label]; !ok {
			order = append(order, label)
		}
		totals[label] = totals[label].Add(t.Transaction.Amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, label := range order {
		result = append(result, CategoryTotal{Label: label, Total: totals[label]})
	}
	return result
}

// MonthlyTrend buckets transactions by the calendar month of their date and
// sums amounts per bucket. Months with no transactions are omitted; the
// result is sorted ascending by month number and annotated with the
// localized month name.
func MonthlyTrend(transactions []*entity.TransactionWithCategory) []TrendPoint {
	buckets := make(map[int]decimal.Decimal)

	for _, t := range transactions {
		month := int(t.Transaction.Date.Month())
		buckets[month] = buckets[month].Add(t.Transaction.Amount)
	}

	months := make([]int, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Ints(months)

	result := make([]TrendPoint, 0, len(months))
	for _, month := range months {
		result = append(result, TrendPoint{
			Month:     month,
			MonthName: valueobject.MonthName(month),
			Total:     buckets[month],
		})
	}
	return result
}

// FinancialSummary partitions transactions by kind and sums each partition.
// A partition with no transactions reports zero. The balance is
// income - expense + savings.
func FinancialSummary(transactions []*entity.TransactionWithCategory) Summary {
	s := Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Savings: decimal.Zero,
	}

	for _, t := range transactions {
		switch t.Transaction.Kind {
		case entity.TransactionKindIncome:
			s.Income = s.Income.Add(t.Transaction.Amount)
		case entity.TransactionKindExpense:
			s.Expense = s.Expense.Add(t.Transaction.Amount)
		case entity.TransactionKindSavings:
			s.Savings = s.Savings.Add(t.Transaction.Amount)
		}
	}

	s.Balance = s.Income.Sub(s.Expense).Add(s.Savings)
	return s
}
