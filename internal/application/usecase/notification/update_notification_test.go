// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

type fakeNotificationRepo struct {
	notifications map[uuid.UUID]*entity.Notification
	findErr       error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uuid.UUID]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.notifications[notification.ID] = notification
	return nil
}

func (r *fakeNotificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
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

func TestUpdateNotificationUseCase(t *testing.T) {
	userID := uuid.New()
	scheduledAt := time.Now().UTC().Add(time.Hour)

	setup := func() (*UpdateNotificationUseCase, *fakeNotificationRepo, *entity.Notification) {
		repo := newFakeNotificationRepo()
		notification := entity.NewNotification(userID, entity.NotificationChannelEmail, "Payment due", "Rent is due soon.", scheduledAt)
		repo.notifications[notification.ID] = notification
		return NewUpdateNotificationUseCase(repo), repo, notification
	}

	t.Run("replaces the notification content", func(t *testing.T) {
		uc, _, notification := setup()

		output, err := uc.Execute(context.Background(), UpdateNotificationInput{
			NotificationID: notification.ID,
			UserID:         userID,
			Channel:        entity.NotificationChannelSMS,
			Subject:        "Payment overdue",
			Body:           "Rent is now overdue.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Notification.Subject != "Payment overdue" {
			t.Errorf("expected subject 'Payment overdue', got %q", output.Notification.Subject)
		}
		if output.Notification.Channel != entity.NotificationChannelSMS {
			t.Errorf("expected channel 'sms', got %q", output.Notification.Channel)
		}
		if !output.Notification.ScheduledAt.Equal(scheduledAt) {
			t.Error("expected an omitted schedule to keep the current one")
		}
	})

	t.Run("reschedules when a new time is given", func(t *testing.T) {
		uc, _, notification := setup()
		newTime := scheduledAt.Add(24 * time.Hour)

		output, err := uc.Execute(context.Background(), UpdateNotificationInput{
			NotificationID: notification.ID,
			UserID:         userID,
			Channel:        entity.NotificationChannelEmail,
			Subject:        "Payment due",
			Body:           "Rent is due soon.",
			ScheduledAt:    newTime,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Notification.ScheduledAt.Equal(newTime) {
			t.Errorf("expected schedule %s, got %s", newTime, output.Notification.ScheduledAt)
		}
	})

	t.Run("rejects an invalid channel", func(t *testing.T) {
		uc, _, notification := setup()

		_, err := uc.Execute(context.Background(), UpdateNotificationInput{
			NotificationID: notification.ID,
			UserID:         userID,
			Channel:        "pigeon",
			Subject:        "Payment due",
			Body:           "Rent is due soon.",
		})

		var notificationErr *domainerror.NotificationError
		if !errors.As(err, &notificationErr) || notificationErr.Code != domainerror.ErrCodeInvalidNotificationChannel {
			t.Fatalf("expected invalid channel error, got %v", err)
		}
	})

	t.Run("treats another user's notification as not found", func(t *testing.T) {
		uc, _, notification := setup()

		_, err := uc.Execute(context.Background(), UpdateNotificationInput{
			NotificationID: notification.ID,
			UserID:         uuid.New(),
			Channel:        entity.NotificationChannelEmail,
			Subject:        "Hijacked",
			Body:           "Should not work.",
		})

		var notificationErr *domainerror.NotificationError
		if !errors.As(err, &notificationErr) || notificationErr.Code != domainerror.ErrCodeNotificationNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("propagates repository failures instead of reporting not found", func(t *testing.T) {
		uc, repo, notification := setup()
		repo.findErr = errors.New("connection refused")

		_, err := uc.Execute(context.Background(), UpdateNotificationInput{
			NotificationID: notification.ID,
			UserID:         userID,
			Channel:        entity.NotificationChannelEmail,
			Subject:        "Payment due",
			Body:           "Rent is due soon.",
		})

		var notificationErr *domainerror.NotificationError
		if errors.As(err, &notificationErr) {
			t.Fatalf("expected a plain wrapped error, got domain error %v", notificationErr)
		}
		if err == nil || !strings.Contains(err.Error(), "connection refused") {
			t.Fatalf("expected the repository failure to surface, got %v", err)
		}
	})
}
