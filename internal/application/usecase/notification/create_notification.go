// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// CreateNotificationInput represents the input for notification creation.
type CreateNotificationInput struct {
	UserID      uuid.UUID
	Channel     entity.NotificationChannel
	Subject     string
	Body        string
	ScheduledAt time.Time
}

// CreateNotificationOutput represents the output of notification creation.
type CreateNotificationOutput struct {
	Notification *entity.Notification
}

// CreateNotificationUseCase handles notification creation logic.
type CreateNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
	userRepo         adapter.UserRepository
}

// NewCreateNotificationUseCase creates a new CreateNotificationUseCase instance.
func NewCreateNotificationUseCase(
	notificationRepo adapter.NotificationRepository,
	userRepo adapter.UserRepository,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Execute stores a notification. Email-channel notifications are picked up
// by the delivery worker once their scheduled time passes.
func (uc *CreateNotificationUseCase) Execute(ctx context.Context, input CreateNotificationInput) (*CreateNotificationOutput, error) {
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

	exists, err := uc.userRepo.ExistsByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationUserNotFound,
			"user not found",
			domainerror.ErrNotificationUserNotFound,
		)
	}

	notification := entity.NewNotification(input.UserID, input.Channel, input.Subject, input.Body, input.ScheduledAt)

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return &CreateNotificationOutput{Notification: notification}, nil
}
