// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.FixedPaymentModel{},
		&model.NotificationModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := entity.NewUser("Test User", email, "hashed-password", "")
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a user through the database", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		user := createTestUser(t, db, "roundtrip@example.com")

		found, err := repo.FindByEmail(ctx, "roundtrip@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected ID %s, got %s", user.ID, found.ID)
		}
		if !found.Active {
			t.Error("expected a freshly created user to be active")
		}
	})

	t.Run("reports existence by email", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		createTestUser(t, db, "exists@example.com")

		exists, err := repo.ExistsByEmail(ctx, "exists@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected email to exist")
		}

		exists, err = repo.ExistsByEmail(ctx, "other@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected email to be absent")
		}
	})

	t.Run("maps a missing user to the domain error", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("persists updates", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		user := createTestUser(t, db, "update@example.com")

		user.Name = "Renamed"
		user.Active = false
		if err := repo.Update(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Renamed" {
			t.Errorf("expected name 'Renamed', got %q", found.Name)
		}
		if found.Active {
			t.Error("expected user to be inactive after update")
		}
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lists own categories plus shared defaults", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		user := createTestUser(t, db, "categories@example.com")
		other := createTestUser(t, db, "neighbor@example.com")

		own := entity.NewCategory("Groceries", entity.CategoryKindExpense, user.ID)
		shared := entity.NewDefaultCategory("Salary", entity.CategoryKindIncome)
		foreign := entity.NewCategory("Gym", entity.CategoryKindExpense, other.ID)
		for _, c := range []*entity.Category{own, shared, foreign} {
			if err := repo.Create(ctx, c); err != nil {
				t.Fatalf("failed to create category: %v", err)
			}
		}

		visible, err := repo.FindVisibleToUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(visible) != 2 {
			t.Fatalf("expected 2 visible categories, got %d", len(visible))
		}
		for _, c := range visible {
			if c.ID == foreign.ID {
				t.Error("expected another user's category to be hidden")
			}
		}
	})

	t.Run("name existence check is case-insensitive", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		user := createTestUser(t, db, "names@example.com")

		if err := repo.Create(ctx, entity.NewCategory("Groceries", entity.CategoryKindExpense, user.ID)); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		exists, err := repo.ExistsByNameForUser(ctx, "gRoCeRiEs", user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected a case-insensitive match")
		}
	})

	t.Run("delete detaches transactions and removes budgets", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		user := createTestUser(t, db, "cascade@example.com")

		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, user.ID)
		if err := repo.Create(ctx, category); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		txnRepo := NewTransactionRepository(db)
		txn := entity.NewTransaction(user.ID, decimal.NewFromInt(50), entity.TransactionKindExpense, &category.ID, "weekly shop", time.Now().UTC(), false, nil)
		if err := txnRepo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		budgetRepo := NewBudgetRepository(db)
		budget := entity.NewBudget(user.ID, category.ID, decimal.NewFromInt(400), 2026, 3)
		if err := budgetRepo.Create(ctx, budget); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}

		if err := repo.Delete(ctx, category.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, category.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected category to be gone, got %v", err)
		}

		detached, err := txnRepo.FindByID(ctx, txn.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detached.CategoryID != nil {
			t.Error("expected transaction to be detached from the deleted category")
		}

		if _, err := budgetRepo.FindByID(ctx, budget.ID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Fatalf("expected budget to be removed, got %v", err)
		}
	})

	t.Run("deleting a missing category maps to the domain error", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by year and kind", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		user := createTestUser(t, db, "filters@example.com")

		inYear := entity.NewTransaction(user.ID, decimal.NewFromInt(100), entity.TransactionKindExpense, nil, "in range", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), false, nil)
		otherYear := entity.NewTransaction(user.ID, decimal.NewFromInt(200), entity.TransactionKindExpense, nil, "out of range", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), false, nil)
		income := entity.NewTransaction(user.ID, decimal.NewFromInt(300), entity.TransactionKindIncome, nil, "salary", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), false, nil)
		for _, txn := range []*entity.Transaction{inYear, otherYear, income} {
			if err := repo.Create(ctx, txn); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		year := 2026
		kind := entity.TransactionKindExpense
		results, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: user.ID, Year: &year, Kind: &kind})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(results))
		}
		if results[0].Transaction.ID != inYear.ID {
			t.Errorf("expected transaction %s, got %s", inYear.ID, results[0].Transaction.ID)
		}
	})

	t.Run("orders results newest date first", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		user := createTestUser(t, db, "ordering@example.com")

		older := entity.NewTransaction(user.ID, decimal.NewFromInt(10), entity.TransactionKindExpense, nil, "older", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), false, nil)
		newer := entity.NewTransaction(user.ID, decimal.NewFromInt(20), entity.TransactionKindExpense, nil, "newer", time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), false, nil)
		for _, txn := range []*entity.Transaction{older, newer} {
			if err := repo.Create(ctx, txn); err != nil {
				t.Fatalf("failed to create transaction: %v", err)
			}
		}

		results, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(results))
		}
		if results[0].Transaction.ID != newer.ID {
			t.Error("expected the newer transaction first")
		}
	})

	t.Run("preloads the linked category", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db)
		user := createTestUser(t, db, "preload@example.com")

		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, user.ID)
		if err := NewCategoryRepository(db).Create(ctx, category); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		txn := entity.NewTransaction(user.ID, decimal.NewFromInt(75), entity.TransactionKindExpense, &category.ID, "shop", time.Now().UTC(), false, nil)
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		found, err := repo.FindByIDWithCategory(ctx, txn.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Category == nil || found.Category.Name != "Groceries" {
			t.Errorf("expected category 'Groceries' to be loaded, got %+v", found.Category)
		}
	})

	t.Run("updating a missing transaction maps to the domain error", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		missing := entity.NewTransaction(uuid.New(), decimal.NewFromInt(1), entity.TransactionKindExpense, nil, "", time.Now().UTC(), false, nil)
		if err := repo.Update(ctx, missing); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("deleting a missing transaction maps to the domain error", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("finds an existing period", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewBudgetRepository(db)
		user := createTestUser(t, db, "budgets@example.com")

		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, user.ID)
		if err := NewCategoryRepository(db).Create(ctx, category); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		budget := entity.NewBudget(user.ID, category.ID, decimal.NewFromInt(400), 2026, 3)
		if err := repo.Create(ctx, budget); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}

		exists, err := repo.ExistsByUserCategoryPeriod(ctx, user.ID, category.ID, 2026, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected the period to exist")
		}

		exists, err = repo.ExistsByUserCategoryPeriod(ctx, user.ID, category.ID, 2026, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the neighboring month to be free")
		}
	})

	t.Run("filter preloads the category", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewBudgetRepository(db)
		user := createTestUser(t, db, "budgetfilter@example.com")

		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, user.ID)
		if err := NewCategoryRepository(db).Create(ctx, category); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		budget := entity.NewBudget(user.ID, category.ID, decimal.NewFromInt(400), 2026, 3)
		if err := repo.Create(ctx, budget); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}

		year, month := 2026, 3
		results, err := repo.FindByFilter(ctx, adapter.BudgetFilter{UserID: user.ID, Year: &year, Month: &month})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(results))
		}
		if results[0].Category == nil || results[0].Category.Name != "Groceries" {
			t.Errorf("expected category 'Groceries' to be loaded, got %+v", results[0].Category)
		}
	})

	t.Run("racing duplicate insert maps to the conflict error", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewBudgetRepository(db)
		user := createTestUser(t, db, "budgetrace@example.com")

		category := entity.NewCategory("Groceries", entity.CategoryKindExpense, user.ID)
		if err := NewCategoryRepository(db).Create(ctx, category); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		first := entity.NewBudget(user.ID, category.ID, decimal.NewFromInt(400), 2026, 3)
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("failed to create budget: %v", err)
		}

		// Same (user, category, year, month) slipping past the use-case
		// check must still hit the unique index and come back as a conflict.
		second := entity.NewBudget(user.ID, category.ID, decimal.NewFromInt(500), 2026, 3)
		if err := repo.Create(ctx, second); !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			t.Fatalf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("deleting a missing budget maps to the domain error", func(t *testing.T) {
		repo := NewBudgetRepository(newTestDB(t))

		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestFixedPaymentRepository(t *testing.T) {
	ctx := context.Background()
	dueDate := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("detects a duplicate description and amount", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewFixedPaymentRepository(db)
		user := createTestUser(t, db, "fixedpayments@example.com")

		payment := entity.NewFixedPayment(user.ID, "Rent", decimal.NewFromInt(1500), dueDate)
		if err := repo.Create(ctx, payment); err != nil {
			t.Fatalf("failed to create fixed payment: %v", err)
		}

		exists, err := repo.ExistsDuplicate(ctx, user.ID, "Rent", decimal.NewFromInt(1500), uuid.Nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected a duplicate to be detected")
		}

		exists, err = repo.ExistsDuplicate(ctx, user.ID, "Rent", decimal.NewFromInt(1500), payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the excluded payment not to count as a duplicate")
		}
	})

	t.Run("delete detaches linked transactions", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewFixedPaymentRepository(db)
		user := createTestUser(t, db, "fpdelete@example.com")

		payment := entity.NewFixedPayment(user.ID, "Rent", decimal.NewFromInt(1500), dueDate)
		if err := repo.Create(ctx, payment); err != nil {
			t.Fatalf("failed to create fixed payment: %v", err)
		}

		txnRepo := NewTransactionRepository(db)
		txn := entity.NewTransaction(user.ID, decimal.NewFromInt(1500), entity.TransactionKindExpense, nil, "february rent", dueDate, true, &payment.ID)
		if err := txnRepo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}

		if err := repo.Delete(ctx, payment.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		detached, err := txnRepo.FindByID(ctx, txn.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detached.FixedPaymentID != nil {
			t.Error("expected transaction to be detached from the deleted payment")
		}
	})

	t.Run("deleting a missing payment maps to the domain error", func(t *testing.T) {
		repo := NewFixedPaymentRepository(newTestDB(t))

		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrFixedPaymentNotFound) {
			t.Fatalf("expected ErrFixedPaymentNotFound, got %v", err)
		}
	})
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	past := time.Now().UTC().Add(-time.Minute)

	t.Run("deliverable excludes sent, failed, future and non-email rows", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewNotificationRepository(db)
		user := createTestUser(t, db, "deliverable@example.com")

		due := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Due", "", past)
		sent := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Sent", "", past)
		sent.MarkSent()
		failed := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Failed", "", past)
		failed.MarkFailed(errors.New("bounced"), true)
		future := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Future", "", time.Now().UTC().Add(time.Hour))
		sms := entity.NewNotification(user.ID, entity.NotificationChannelSMS, "SMS", "", past)
		for _, n := range []*entity.Notification{due, sent, failed, future, sms} {
			if err := repo.Create(ctx, n); err != nil {
				t.Fatalf("failed to create notification: %v", err)
			}
		}

		deliverable, err := repo.FindDeliverable(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(deliverable) != 1 {
			t.Fatalf("expected 1 deliverable notification, got %d", len(deliverable))
		}
		if deliverable[0].ID != due.ID {
			t.Errorf("expected notification %s, got %s", due.ID, deliverable[0].ID)
		}
	})

	t.Run("deliverable returns oldest first and honors the limit", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewNotificationRepository(db)
		user := createTestUser(t, db, "batch@example.com")

		oldest := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Oldest", "", past.Add(-time.Hour))
		middle := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Middle", "", past.Add(-time.Minute))
		newest := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Newest", "", past)
		for _, n := range []*entity.Notification{newest, oldest, middle} {
			if err := repo.Create(ctx, n); err != nil {
				t.Fatalf("failed to create notification: %v", err)
			}
		}

		deliverable, err := repo.FindDeliverable(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(deliverable) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(deliverable))
		}
		if deliverable[0].ID != oldest.ID || deliverable[1].ID != middle.ID {
			t.Error("expected notifications ordered by scheduled time ascending")
		}
	})

	t.Run("update persists delivery state", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewNotificationRepository(db)
		user := createTestUser(t, db, "state@example.com")

		notification := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "State", "", past)
		if err := repo.Create(ctx, notification); err != nil {
			t.Fatalf("failed to create notification: %v", err)
		}

		notification.MarkSent()
		if err := repo.Update(ctx, notification); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, notification.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Sent || found.SentAt == nil {
			t.Error("expected sent state to be persisted")
		}
	})

	t.Run("unsent-only listing hides sent notifications", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewNotificationRepository(db)
		user := createTestUser(t, db, "listing@example.com")

		pending := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Pending", "", past)
		delivered := entity.NewNotification(user.ID, entity.NotificationChannelEmail, "Delivered", "", past)
		delivered.MarkSent()
		for _, n := range []*entity.Notification{pending, delivered} {
			if err := repo.Create(ctx, n); err != nil {
				t.Fatalf("failed to create notification: %v", err)
			}
		}

		unsent, err := repo.FindByUser(ctx, user.ID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(unsent) != 1 || unsent[0].ID != pending.ID {
			t.Fatalf("expected only the pending notification, got %d rows", len(unsent))
		}
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh token lifecycle", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)
		user := createTestUser(t, db, "tokens@example.com")

		expiresAt := time.Now().UTC().Add(time.Hour)
		if err := repo.SaveRefreshToken(ctx, "refresh-abc", user.ID, expiresAt); err != nil {
			t.Fatalf("failed to save refresh token: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "refresh-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected a fresh token to be valid")
		}

		if err := repo.InvalidateRefreshToken(ctx, "refresh-abc"); err != nil {
			t.Fatalf("failed to invalidate: %v", err)
		}

		valid, err = repo.IsRefreshTokenValid(ctx, "refresh-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected an invalidated token to be rejected")
		}
	})

	t.Run("expired refresh tokens are rejected", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)
		user := createTestUser(t, db, "expired@example.com")

		if err := repo.SaveRefreshToken(ctx, "refresh-old", user.ID, time.Now().UTC().Add(-time.Hour)); err != nil {
			t.Fatalf("failed to save refresh token: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "refresh-old")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected an expired token to be rejected")
		}
	})

	t.Run("logout everywhere invalidates all of a user's tokens", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)
		user := createTestUser(t, db, "everywhere@example.com")

		expiresAt := time.Now().UTC().Add(time.Hour)
		for _, token := range []string{"refresh-1", "refresh-2"} {
			if err := repo.SaveRefreshToken(ctx, token, user.ID, expiresAt); err != nil {
				t.Fatalf("failed to save refresh token: %v", err)
			}
		}

		if err := repo.InvalidateAllUserRefreshTokens(ctx, user.ID); err != nil {
			t.Fatalf("failed to invalidate: %v", err)
		}

		for _, token := range []string{"refresh-1", "refresh-2"} {
			valid, err := repo.IsRefreshTokenValid(ctx, token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if valid {
				t.Errorf("expected token %q to be invalidated", token)
			}
		}
	})

	t.Run("password reset token is single-use", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTokenRepository(db)
		user := createTestUser(t, db, "reset@example.com")

		expiresAt := time.Now().UTC().Add(time.Hour)
		if err := repo.SavePasswordResetToken(ctx, "reset-abc", user.ID, user.Email, expiresAt); err != nil {
			t.Fatalf("failed to save reset token: %v", err)
		}

		resetToken, err := repo.GetPasswordResetToken(ctx, "reset-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resetToken == nil || resetToken.Email != user.Email {
			t.Fatalf("expected a stored reset token for %s, got %+v", user.Email, resetToken)
		}

		if err := repo.InvalidatePasswordResetToken(ctx, "reset-abc"); err != nil {
			t.Fatalf("failed to invalidate: %v", err)
		}

		resetToken, err = repo.GetPasswordResetToken(ctx, "reset-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resetToken != nil {
			t.Error("expected a used reset token to be unavailable")
		}
	})
}
