// Package main runs database schema migrations for the LanaApp API.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/lanaapp/backend/config"
	"github.com/lanaapp/backend/internal/infra/db"
	"github.com/lanaapp/backend/internal/integration/persistence/model"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.FixedPaymentModel{},
		&model.NotificationModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migrations completed successfully")
}
