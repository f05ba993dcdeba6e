// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification in the database.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a notification by its ID.
func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&notificationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNotificationNotFound
		}
		return nil, result.Error
	}
	return notificationModel.ToEntity(), nil
}

// FindByUser retrieves notifications for a user, newest first.
func (r *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, unsentOnly bool) ([]*entity.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if unsentOnly {
		query = query.Where("sent = ?", false)
	}

	var notificationModels []model.NotificationModel
	result := query.
		Order("created_at DESC").
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// FindDeliverable retrieves up to limit unsent, unfailed email-channel
// notifications whose scheduled time has passed, oldest first.
func (r *notificationRepository) FindDeliverable(ctx context.Context, limit int) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("channel = ?", string(entity.NotificationChannelEmail)).
		Where("sent = ? AND failed = ?", false, false).
		Where("scheduled_at <= ?", time.Now()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// Update updates an existing notification in the database.
func (r *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", notificationModel.ID).
		Select("Channel", "Subject", "Body", "Sent", "Failed", "Attempts", "LastError", "ScheduledAt", "SentAt").
		Updates(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	return nil
}

// Delete removes a notification from the database.
func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.NotificationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	return nil
}
