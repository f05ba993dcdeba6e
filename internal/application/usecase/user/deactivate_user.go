// Package user contains user-profile-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// DeactivateUserInput represents the input for account deactivation.
type DeactivateUserInput struct {
	UserID uuid.UUID
}

// DeactivateUserUseCase handles account deactivation. Accounts are never
// hard-deleted; the active flag is cleared and sessions are revoked.
type DeactivateUserUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewDeactivateUserUseCase creates a new DeactivateUserUseCase instance.
func NewDeactivateUserUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute deactivates the account and revokes its refresh tokens.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, input DeactivateUserInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	if !user.Active {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	user.Deactivate()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		slog.Warn("Failed to revoke refresh tokens on deactivation", "error", err, "userID", user.ID)
	}

	return nil
}
