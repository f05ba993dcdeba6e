// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/application/usecase/report"
)

// CategoryTotalItem represents one category slice in a totals report.
type CategoryTotalItem struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// CategoryTotalsResponse represents the response for the category totals report.
type CategoryTotalsResponse struct {
	Kind   string              `json:"kind"`
	Totals []CategoryTotalItem `json:"totals"`
}

// TrendPointItem represents one month in a trend report.
type TrendPointItem struct {
	Month     int             `json:"month"`
	MonthName string          `json:"month_name"`
	Total     decimal.Decimal `json:"total"`
}

// TrendResponse represents the response for the monthly trend report.
type TrendResponse struct {
	Kind   string           `json:"kind"`
	Points []TrendPointItem `json:"points"`
}

// SummaryResponse represents the response for the financial summary report.
type SummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
	Balance decimal.Decimal `json:"balance"`
}

// ToCategoryTotalsResponse converts category totals to a CategoryTotalsResponse DTO.
func ToCategoryTotalsResponse(kind string, totals []report.CategoryTotal) CategoryTotalsResponse {
	items := make([]CategoryTotalItem, len(totals))
	for i, total := range totals {
		items[i] = CategoryTotalItem{
			Label: total.Label,
			Total: total.Total,
		}
	}
	return CategoryTotalsResponse{
		Kind:   kind,
		Totals: items,
	}
}

// ToTrendResponse converts trend points to a TrendResponse DTO.
func ToTrendResponse(kind string, points []report.TrendPoint) TrendResponse {
	items := make([]TrendPointItem, len(points))
	for i, point := range points {
		items[i] = TrendPointItem{
			Month:     point.Month,
			MonthName: point.MonthName,
			Total:     point.Total,
		}
	}
	return TrendResponse{
		Kind:   kind,
		Points: items,
	}
}

// ToSummaryResponse converts a financial summary to a SummaryResponse DTO.
func ToSummaryResponse(summary report.Summary) SummaryResponse {
	return SummaryResponse{
		Income:  summary.Income,
		Expense: summary.Expense,
		Savings: summary.Savings,
		Balance: summary.Balance,
	}
}
