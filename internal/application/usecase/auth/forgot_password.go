// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// recoveryMessage is returned for every recovery request, whether or not the
// email is registered, so the endpoint cannot be used to enumerate accounts.
const recoveryMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for a password recovery request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a password recovery request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles password recovery logic. Delivery is
// fire-and-forget: the reset email is stored as a notification for the
// delivery worker, and failures never surface to the caller.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	notificationRepo  adapter.NotificationRepository
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	notificationRepo adapter.NotificationRepository,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		notificationRepo:  notificationRepo,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the recovery request. Always answers with the same
// message to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Debug("Password recovery requested for unknown email", "email", input.Email)
		return &ForgotPasswordOutput{Message: recoveryMessage}, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "error", err, "userID", user.ID)
		return &ForgotPasswordOutput{Message: recoveryMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)
	notification := entity.NewNotification(
		user.ID,
		entity.NotificationChannelEmail,
		"Reset your LanaApp password",
		fmt.Sprintf("Hi %s,\n\nUse the link below to reset your password. The link expires in 1 hour.\n\n%s\n", user.Name, resetURL),
		time.Time{},
	)

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		slog.Error("Failed to store password reset notification", "error", err, "userID", user.ID)
	} else {
		slog.Info("Password reset notification stored", "userID", user.ID, "notificationID", notification.ID)
	}

	return &ForgotPasswordOutput{Message: recoveryMessage}, nil
}
