// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/usecase/fixedpayment"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/integration/entrypoint/dto"
	"github.com/lanaapp/backend/internal/integration/entrypoint/middleware"
)

// FixedPaymentController handles fixed payment endpoints.
type FixedPaymentController struct {
	listUseCase   *fixedpayment.ListFixedPaymentsUseCase
	createUseCase *fixedpayment.CreateFixedPaymentUseCase
	updateUseCase *fixedpayment.UpdateFixedPaymentUseCase
	deleteUseCase *fixedpayment.DeleteFixedPaymentUseCase
}

// NewFixedPaymentController creates a new fixed payment controller instance.
func NewFixedPaymentController(
	listUseCase *fixedpayment.ListFixedPaymentsUseCase,
	createUseCase *fixedpayment.CreateFixedPaymentUseCase,
	updateUseCase *fixedpayment.UpdateFixedPaymentUseCase,
	deleteUseCase *fixedpayment.DeleteFixedPaymentUseCase,
) *FixedPaymentController {
	return &FixedPaymentController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /fixed-payments requests.
func (c *FixedPaymentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := fixedpayment.ListFixedPaymentsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFixedPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedPaymentListResponse(output.FixedPayments))
}

// Create handles POST /fixed-payments requests.
func (c *FixedPaymentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateFixedPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFixedPaymentFields),
		})
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingFixedPaymentFields),
		})
		return
	}

	input := fixedpayment.CreateFixedPaymentInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFixedPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFixedPaymentResponse(output.FixedPayment))
}

// Update handles PUT /fixed-payments/:id requests.
func (c *FixedPaymentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fixedPaymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed payment ID format",
		})
		return
	}

	var req dto.UpdateFixedPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFixedPaymentFields),
		})
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingFixedPaymentFields),
		})
		return
	}

	input := fixedpayment.UpdateFixedPaymentInput{
		FixedPaymentID: fixedPaymentID,
		UserID:         userID,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        dueDate,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFixedPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedPaymentResponse(output.FixedPayment))
}

// Delete handles DELETE /fixed-payments/:id requests.
func (c *FixedPaymentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fixedPaymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed payment ID format",
		})
		return
	}

	input := fixedpayment.DeleteFixedPaymentInput{
		FixedPaymentID: fixedPaymentID,
		UserID:         userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleFixedPaymentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleFixedPaymentError handles fixed payment errors and returns appropriate HTTP responses.
func (c *FixedPaymentController) handleFixedPaymentError(ctx *gin.Context, err error) {
	var fixedPaymentErr *domainerror.FixedPaymentError
	if errors.As(err, &fixedPaymentErr) {
		statusCode := c.getStatusCodeForFixedPaymentError(fixedPaymentErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: fixedPaymentErr.Message,
			Code:  string(fixedPaymentErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFixedPaymentError maps fixed payment error codes to HTTP status codes.
func (c *FixedPaymentController) getStatusCodeForFixedPaymentError(code domainerror.FixedPaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodeFixedPaymentNotFound, domainerror.ErrCodeFixedPaymentUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFixedPaymentDuplicate:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidFixedPaymentAmount,
		domainerror.ErrCodeMissingFixedPaymentFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
