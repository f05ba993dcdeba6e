// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// UpdateNotificationInput represents the input for updating a notification.
// A zero ScheduledAt keeps the current schedule.
type UpdateNotificationInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
	Channel        entity.NotificationChannel
	Subject        string
	Body           string
	ScheduledAt    time.Time
}

// UpdateNotificationOutput represents the output of a notification update.
type UpdateNotificationOutput struct {
	Notification *entity.Notification
}

// UpdateNotificationUseCase handles notification update logic.
type UpdateNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewUpdateNotificationUseCase creates a new UpdateNotificationUseCase instance.
func NewUpdateNotificationUseCase(notificationRepo adapter.NotificationRepository) *UpdateNotificationUseCase {
	return &UpdateNotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute replaces the content of a notification scoped to the owning user.
// A notification belonging to another user is reported as not found.
func (uc *UpdateNotificationUseCase) Execute(ctx context.Context, input UpdateNotificationInput) (*UpdateNotificationOutput, error) {
	if !entity.ValidNotificationChannel(input.Channel) {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidNotificationChannel,
			"channel must be 'email' or 'sms'",
			domainerror.ErrInvalidNotificationChannel,
		)
	}

	if input.Subject == "" || input.Body == "" {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeMissingNotificationFields,
			"subject and body are required",
			nil,
		)
	}

	notification, err := uc.notificationRepo.FindByID(ctx, input.NotificationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodeNotificationNotFound,
				"notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}
	if notification.UserID != input.UserID {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationNotFound,
			"notification not found",
			domainerror.ErrNotificationNotFound,
		)
	}

	notification.Channel = input.Channel
	notification.Subject = input.Subject
	notification.Body = input.Body
	if !input.ScheduledAt.IsZero() {
		notification.ScheduledAt = input.ScheduledAt
	}

	if err := uc.notificationRepo.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	return &UpdateNotificationOutput{Notification: notification}, nil
}
