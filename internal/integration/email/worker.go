// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// Worker delivers pending email-channel notifications.
type Worker struct {
	notifications adapter.NotificationRepository
	users         adapter.UserRepository
	sender        adapter.EmailSender
	pollInterval  time.Duration
	batchSize     int
}

// WorkerConfig holds configuration for the delivery worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new delivery worker.
func NewWorker(notifications adapter.NotificationRepository, users adapter.UserRepository, sender adapter.EmailSender, config WorkerConfig) *Worker {
	return &Worker{
		notifications: notifications,
		users:         users,
		sender:        sender,
		pollInterval:  config.PollInterval,
		batchSize:     config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of deliverable notifications.
func (w *Worker) processBatch(ctx context.Context) {
	notifications, err := w.notifications.FindDeliverable(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to fetch deliverable notifications", "error", err)
		return
	}

	if len(notifications) == 0 {
		return
	}

	slog.Debug("Processing notification batch", "count", len(notifications))

	for _, notification := range notifications {
		select {
		case <-ctx.Done():
			return
		default:
			w.deliver(ctx, notification)
		}
	}
}

// deliver sends a single notification to its user's email address.
func (w *Worker) deliver(ctx context.Context, notification *entity.Notification) {
	logger := slog.With(
		"notification_id", notification.ID,
		"user_id", notification.UserID,
	)

	user, err := w.users.FindByID(ctx, notification.UserID)
	if err != nil {
		logger.Error("Failed to look up notification recipient", "error", err)
		// A missing or deleted user will never resolve on retry.
		w.handleFailure(ctx, notification, err, errors.Is(err, domainerror.ErrUserNotFound))
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: notification.Subject,
		Text:    notification.Body,
	})
	if err != nil {
		logger.Error("Failed to send notification email", "error", err)

		var emailErr *domainerror.EmailError
		isPermanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure

		w.handleFailure(ctx, notification, err, isPermanent)
		return
	}

	notification.MarkSent()
	if err := w.notifications.Update(ctx, notification); err != nil {
		logger.Error("Failed to mark notification as sent", "error", err)
		return
	}

	logger.Info("Notification delivered", "provider_id", result.ProviderID)
}

// handleFailure records a delivery failure and schedules a retry when allowed.
func (w *Worker) handleFailure(ctx context.Context, notification *entity.Notification, err error, permanent bool) {
	notification.MarkFailed(err, permanent)

	if updateErr := w.notifications.Update(ctx, notification); updateErr != nil {
		slog.Error("Failed to update notification after failure",
			"notification_id", notification.ID,
			"error", updateErr,
		)
	}

	if notification.Failed {
		slog.Warn("Notification permanently failed",
			"notification_id", notification.ID,
			"attempts", notification.Attempts,
			"last_error", notification.LastError,
		)
	} else {
		slog.Info("Notification scheduled for retry",
			"notification_id", notification.ID,
			"attempts", notification.Attempts,
			"scheduled_at", notification.ScheduledAt,
		)
	}
}

// ProcessNow processes deliverable notifications immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
