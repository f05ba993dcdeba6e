// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

type fakeNotificationRepo struct {
	notifications map[uuid.UUID]*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uuid.UUID]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.notifications[notification.ID] = notification
	return nil
}

func (r *fakeNotificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, domainerror.ErrNotificationNotFound
	}
	return notification, nil
}

func (r *fakeNotificationRepo) FindByUser(ctx context.Context, userID uuid.UUID, unsentOnly bool) ([]*entity.Notification, error) {
	result := make([]*entity.Notification, 0)
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			continue
		}
		if unsentOnly && notification.Sent {
			continue
		}
		result = append(result, notification)
	}
	return result, nil
}

func (r *fakeNotificationRepo) FindDeliverable(ctx context.Context, limit int) ([]*entity.Notification, error) {
	result := make([]*entity.Notification, 0)
	for _, notification := range r.notifications {
		if notification.Deliverable() {
			result = append(result, notification)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) Update(ctx context.Context, notification *entity.Notification) error {
	if _, ok := r.notifications[notification.ID]; !ok {
		return domainerror.ErrNotificationNotFound
	}
	r.notifications[notification.ID] = notification
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.notifications[id]; !ok {
		return domainerror.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func TestWorkerDelivery(t *testing.T) {
	userID := uuid.New()
	past := time.Now().UTC().Add(-time.Minute)

	setup := func() (*Worker, *fakeNotificationRepo, *MockEmailSender) {
		notificationRepo := newFakeNotificationRepo()
		userRepo := newFakeUserRepo()
		userRepo.users[userID] = &entity.User{
			ID:     userID,
			Name:   "Test User",
			Email:  "worker@example.com",
			Active: true,
		}
		sender := NewMockEmailSender()
		worker := NewWorker(notificationRepo, userRepo, sender, DefaultWorkerConfig())
		return worker, notificationRepo, sender
	}

	t.Run("marks a delivered notification as sent", func(t *testing.T) {
		worker, notificationRepo, sender := setup()
		notification := entity.NewNotification(userID, entity.NotificationChannelEmail, "Budget alert", "Almost there", past)
		notificationRepo.notifications[notification.ID] = notification

		worker.ProcessNow(context.Background())

		if !notification.Sent {
			t.Error("expected notification to be marked sent")
		}
		if notification.SentAt == nil {
			t.Error("expected sent timestamp to be recorded")
		}
		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
		}
		if sender.SentEmails[0].To != "worker@example.com" {
			t.Errorf("expected recipient 'worker@example.com', got %q", sender.SentEmails[0].To)
		}
	})

	t.Run("schedules a retry after a temporary failure", func(t *testing.T) {
		worker, notificationRepo, sender := setup()
		notification := entity.NewNotification(userID, entity.NotificationChannelEmail, "Budget alert", "Almost there", past)
		notificationRepo.notifications[notification.ID] = notification

		sender.SetFailure(errors.New("connection reset"), false)
		worker.ProcessNow(context.Background())

		if notification.Sent {
			t.Error("expected notification to stay unsent")
		}
		if notification.Failed {
			t.Error("expected notification to stay retryable after one temporary failure")
		}
		if notification.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", notification.Attempts)
		}
		if !notification.ScheduledAt.After(time.Now().UTC().Add(-time.Second)) {
			t.Errorf("expected retry to be pushed into the future, got %s", notification.ScheduledAt)
		}
	})

	t.Run("marks a permanent failure immediately", func(t *testing.T) {
		worker, notificationRepo, sender := setup()
		notification := entity.NewNotification(userID, entity.NotificationChannelEmail, "Budget alert", "Almost there", past)
		notificationRepo.notifications[notification.ID] = notification

		sender.SetFailure(domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "unauthorized", nil), true)
		worker.ProcessNow(context.Background())

		if !notification.Failed {
			t.Error("expected notification to be marked failed")
		}
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		worker, notificationRepo, sender := setup()
		notification := entity.NewNotification(userID, entity.NotificationChannelEmail, "Budget alert", "Almost there", past)
		notificationRepo.notifications[notification.ID] = notification

		sender.SetFailure(errors.New("connection reset"), false)
		for i := 0; i < notification.MaxAttempts; i++ {
			// Pull the retry time back so the batch picks it up again.
			notification.ScheduledAt = past
			worker.ProcessNow(context.Background())
		}

		if !notification.Failed {
			t.Errorf("expected notification to be failed after %d attempts, got attempts=%d", notification.MaxAttempts, notification.Attempts)
		}
	})

	t.Run("fails permanently when the recipient no longer exists", func(t *testing.T) {
		notificationRepo := newFakeNotificationRepo()
		sender := NewMockEmailSender()
		worker := NewWorker(notificationRepo, newFakeUserRepo(), sender, DefaultWorkerConfig())

		notification := entity.NewNotification(uuid.New(), entity.NotificationChannelEmail, "Orphan", "No recipient", past)
		notificationRepo.notifications[notification.ID] = notification

		worker.ProcessNow(context.Background())

		if !notification.Failed {
			t.Error("expected notification for a missing user to fail permanently")
		}
		if len(sender.SentEmails) != 0 {
			t.Errorf("expected no emails sent, got %d", len(sender.SentEmails))
		}
	})
}
