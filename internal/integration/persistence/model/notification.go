// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Channel     string     `gorm:"type:varchar(10);not null;index"`
	Subject     string     `gorm:"type:varchar(255);not null"`
	Body        string     `gorm:"type:text;not null"`
	Sent        bool       `gorm:"default:false;index"`
	Failed      bool       `gorm:"default:false"`
	Attempts    int        `gorm:"default:0"`
	MaxAttempts int        `gorm:"default:3"`
	LastError   string     `gorm:"type:text"`
	ScheduledAt time.Time  `gorm:"not null;index"`
	SentAt      *time.Time
	CreatedAt   time.Time  `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:          m.ID,
		UserID:      m.UserID,
		Channel:     entity.NotificationChannel(m.Channel),
		Subject:     m.Subject,
		Body:        m.Body,
		Sent:        m.Sent,
		Failed:      m.Failed,
		Attempts:    m.Attempts,
		MaxAttempts: m.MaxAttempts,
		LastError:   m.LastError,
		ScheduledAt: m.ScheduledAt,
		SentAt:      m.SentAt,
		CreatedAt:   m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:          notification.ID,
		UserID:      notification.UserID,
		Channel:     string(notification.Channel),
		Subject:     notification.Subject,
		Body:        notification.Body,
		Sent:        notification.Sent,
		Failed:      notification.Failed,
		Attempts:    notification.Attempts,
		MaxAttempts: notification.MaxAttempts,
		LastError:   notification.LastError,
		ScheduledAt: notification.ScheduledAt,
		SentAt:      notification.SentAt,
		CreatedAt:   notification.CreatedAt,
	}
}
