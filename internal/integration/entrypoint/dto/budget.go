// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/application/usecase/budget"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Year       int             `json:"year" binding:"required"`
	Month      int             `json:"month" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	MonthName    string          `json:"month_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget View to a BudgetResponse DTO.
func ToBudgetResponse(v budget.View) BudgetResponse {
	return BudgetResponse{
		ID:           v.ID.String(),
		CategoryID:   v.CategoryID.String(),
		CategoryName: v.CategoryName,
		Amount:       v.Amount,
		Year:         v.Year,
		Month:        v.Month,
		MonthName:    v.MonthName,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budget Views to BudgetListResponse.
func ToBudgetListResponse(views []budget.View) BudgetListResponse {
	budgets := make([]BudgetResponse, len(views))
	for i, v := range views {
		budgets[i] = ToBudgetResponse(v)
	}
	return BudgetListResponse{
		Budgets: budgets,
	}
}
