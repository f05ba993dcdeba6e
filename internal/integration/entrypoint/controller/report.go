// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lanaapp/backend/internal/application/usecase/report"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/integration/entrypoint/dto"
	"github.com/lanaapp/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	categoryTotalsUseCase   *report.CategoryTotalsUseCase
	monthlyTrendUseCase     *report.MonthlyTrendUseCase
	financialSummaryUseCase *report.FinancialSummaryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	categoryTotalsUseCase *report.CategoryTotalsUseCase,
	monthlyTrendUseCase *report.MonthlyTrendUseCase,
	financialSummaryUseCase *report.FinancialSummaryUseCase,
) *ReportController {
	return &ReportController{
		categoryTotalsUseCase:   categoryTotalsUseCase,
		monthlyTrendUseCase:     monthlyTrendUseCase,
		financialSummaryUseCase: financialSummaryUseCase,
	}
}

// CategoryTotals handles GET /reports/categories requests. The kind query
// parameter selects which transactions are aggregated.
func (c *ReportController) CategoryTotals(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	kind := ctx.DefaultQuery("kind", string(entity.TransactionKindExpense))

	input := report.CategoryTotalsInput{
		UserID: userID,
		Kind:   entity.TransactionKind(kind),
	}

	output, err := c.categoryTotalsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(kind, output.Totals))
}

// MonthlyTrend handles GET /reports/trends requests. Supported query
// parameters: kind, year.
func (c *ReportController) MonthlyTrend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	kind := ctx.DefaultQuery("kind", string(entity.TransactionKindExpense))

	input := report.MonthlyTrendInput{
		UserID: userID,
		Kind:   entity.TransactionKind(kind),
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year format",
				Code:  string(domainerror.ErrCodeInvalidReportYear),
			})
			return
		}
		input.Year = &year
	}

	output, err := c.monthlyTrendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendResponse(kind, output.Points))
}

// FinancialSummary handles GET /reports/summary requests.
func (c *ReportController) FinancialSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.FinancialSummaryInput{
		UserID: userID,
	}

	output, err := c.financialSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportKind, domainerror.ErrCodeInvalidReportYear:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
