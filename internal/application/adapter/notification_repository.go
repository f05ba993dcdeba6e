// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create creates a new notification in the database.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByUser retrieves notifications for a user, newest first. When
	// unsentOnly is set, sent notifications are excluded.
	FindByUser(ctx context.Context, userID uuid.UUID, unsentOnly bool) ([]*entity.Notification, error)

	// FindDeliverable retrieves up to limit unsent, unfailed email-channel
	// notifications whose scheduled time has passed, oldest first.
	FindDeliverable(ctx context.Context, limit int) ([]*entity.Notification, error)

	// Update updates an existing notification in the database.
	Update(ctx context.Context, notification *entity.Notification) error

	// Delete removes a notification from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
