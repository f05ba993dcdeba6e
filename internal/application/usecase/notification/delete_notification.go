// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// DeleteNotificationInput represents the input for deleting a notification.
type DeleteNotificationInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

// DeleteNotificationUseCase handles notification deletion logic.
type DeleteNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewDeleteNotificationUseCase creates a new DeleteNotificationUseCase instance.
func NewDeleteNotificationUseCase(notificationRepo adapter.NotificationRepository) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute deletes a notification scoped to the owning user.
func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, input DeleteNotificationInput) error {
	notification, err := uc.notificationRepo.FindByID(ctx, input.NotificationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return fmt.Errorf("failed to find notification: %w", err)
	}
	if notification.UserID != input.UserID {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationNotFound,
			"notification not found",
			domainerror.ErrNotificationNotFound,
		)
	}

	if err := uc.notificationRepo.Delete(ctx, notification.ID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}
