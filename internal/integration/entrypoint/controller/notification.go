// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/usecase/notification"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/integration/entrypoint/dto"
	"github.com/lanaapp/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase   *notification.ListNotificationsUseCase
	createUseCase *notification.CreateNotificationUseCase
	updateUseCase *notification.UpdateNotificationUseCase
	deleteUseCase *notification.DeleteNotificationUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	createUseCase *notification.CreateNotificationUseCase,
	updateUseCase *notification.UpdateNotificationUseCase,
	deleteUseCase *notification.DeleteNotificationUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /notifications requests. The unsent_only query parameter
// limits the result to notifications that have not been delivered yet.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := notification.ListNotificationsInput{
		UserID:     userID,
		UnsentOnly: ctx.Query("unsent_only") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}

// Create handles POST /notifications requests.
func (c *NotificationController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingNotificationFields),
		})
		return
	}

	input := notification.CreateNotificationInput{
		UserID:  userID,
		Channel: entity.NotificationChannel(req.Channel),
		Subject: req.Subject,
		Body:    req.Body,
	}

	if req.ScheduledAt != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid scheduled_at format, expected RFC 3339",
				Code:  string(domainerror.ErrCodeMissingNotificationFields),
			})
			return
		}
		input.ScheduledAt = scheduledAt
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNotificationResponse(output.Notification))
}

// Update handles PUT /notifications/:id requests.
func (c *NotificationController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	var req dto.UpdateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingNotificationFields),
		})
		return
	}

	input := notification.UpdateNotificationInput{
		NotificationID: notificationID,
		UserID:         userID,
		Channel:        entity.NotificationChannel(req.Channel),
		Subject:        req.Subject,
		Body:           req.Body,
	}

	if req.ScheduledAt != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid scheduled_at format, expected RFC 3339",
				Code:  string(domainerror.ErrCodeMissingNotificationFields),
			})
			return
		}
		input.ScheduledAt = scheduledAt
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationResponse(output.Notification))
}

// Delete handles DELETE /notifications/:id requests.
func (c *NotificationController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	input := notification.DeleteNotificationInput{
		NotificationID: notificationID,
		UserID:         userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleNotificationError handles notification errors and returns appropriate HTTP responses.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notificationErr *domainerror.NotificationError
	if errors.As(err, &notificationErr) {
		statusCode := c.getStatusCodeForNotificationError(notificationErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: notificationErr.Message,
			Code:  string(notificationErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForNotificationError maps notification error codes to HTTP status codes.
func (c *NotificationController) getStatusCodeForNotificationError(code domainerror.NotificationErrorCode) int {
	switch code {
	case domainerror.ErrCodeNotificationNotFound, domainerror.ErrCodeNotificationUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidNotificationChannel,
		domainerror.ErrCodeMissingNotificationFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
