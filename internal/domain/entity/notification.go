// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel represents the delivery channel of a notification.
type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
)

// ValidNotificationChannel reports whether c is a supported channel.
func ValidNotificationChannel(c NotificationChannel) bool {
	return c == NotificationChannelEmail || c == NotificationChannelSMS
}

// Notification is a message addressed to one user. Email-channel
// notifications are picked up by the delivery worker; SMS-channel ones are
// stored only.
type Notification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Channel     NotificationChannel
	Subject     string
	Body        string
	Sent        bool
	Failed      bool
	Attempts    int
	MaxAttempts int
	LastError   string
	ScheduledAt time.Time
	SentAt      *time.Time
	CreatedAt   time.Time
}

// NewNotification creates a pending Notification. A zero scheduledAt means
// deliver as soon as the worker picks it up.
func NewNotification(userID uuid.UUID, channel NotificationChannel, subject, body string, scheduledAt time.Time) *Notification {
	now := time.Now().UTC()
	if scheduledAt.IsZero() {
		scheduledAt = now
	}

	return &Notification{
		ID:          uuid.New(),
		UserID:      userID,
		Channel:     channel,
		Subject:     subject,
		Body:        body,
		MaxAttempts: 3,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
	}
}

// MarkSent records a successful delivery.
func (n *Notification) MarkSent() {
	n.Sent = true
	now := time.Now().UTC()
	n.SentAt = &now
}

// MarkFailed records a delivery failure and schedules a retry if attempts
// remain. Permanent failures stop retrying immediately.
func (n *Notification) MarkFailed(err error, permanent bool) {
	n.Attempts++
	n.LastError = err.Error()

	if permanent || n.Attempts >= n.MaxAttempts {
		n.Failed = true
	} else {
		n.ScheduledAt = n.nextRetry()
	}
}

// nextRetry backs off between attempts: immediate, 1min, 5min.
func (n *Notification) nextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if n.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[n.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// Deliverable reports whether the worker should pick this notification up.
func (n *Notification) Deliverable() bool {
	return !n.Sent && !n.Failed && time.Now().UTC().After(n.ScheduledAt)
}
