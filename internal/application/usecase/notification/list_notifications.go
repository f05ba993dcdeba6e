// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
)

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	UserID     uuid.UUID
	UnsentOnly bool
}

// ListNotificationsOutput represents the output of listing notifications.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
}

// ListNotificationsUseCase handles notification listing logic.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute lists the user's notifications, newest first.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	notifications, err := uc.notificationRepo.FindByUser(ctx, input.UserID, input.UnsentOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &ListNotificationsOutput{Notifications: notifications}, nil
}
