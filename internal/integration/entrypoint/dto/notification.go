// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// CreateNotificationRequest represents the request body for notification creation.
// ScheduledAt is RFC 3339; omitted means deliver immediately.
type CreateNotificationRequest struct {
	Channel     string  `json:"channel" binding:"required,oneof=email sms"`
	Subject     string  `json:"subject" binding:"required,max=255"`
	Body        string  `json:"body" binding:"required"`
	ScheduledAt *string `json:"scheduled_at,omitempty"`
}

// UpdateNotificationRequest represents the request body for a full-replace
// notification update. An omitted scheduled_at keeps the current schedule.
type UpdateNotificationRequest struct {
	Channel     string  `json:"channel" binding:"required,oneof=email sms"`
	Subject     string  `json:"subject" binding:"required,max=255"`
	Body        string  `json:"body" binding:"required"`
	ScheduledAt *string `json:"scheduled_at,omitempty"`
}

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID          string     `json:"id"`
	Channel     string     `json:"channel"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Sent        bool       `json:"sent"`
	Failed      bool       `json:"failed"`
	Attempts    int        `json:"attempts"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain Notification entity to a NotificationResponse DTO.
func ToNotificationResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          notification.ID.String(),
		Channel:     string(notification.Channel),
		Subject:     notification.Subject,
		Body:        notification.Body,
		Sent:        notification.Sent,
		Failed:      notification.Failed,
		Attempts:    notification.Attempts,
		ScheduledAt: notification.ScheduledAt,
		SentAt:      notification.SentAt,
		CreatedAt:   notification.CreatedAt,
	}
}

// ToNotificationListResponse converts a list of notifications to NotificationListResponse.
func ToNotificationListResponse(notifications []*entity.Notification) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = ToNotificationResponse(notification)
	}
	return NotificationListResponse{
		Notifications: responses,
	}
}
