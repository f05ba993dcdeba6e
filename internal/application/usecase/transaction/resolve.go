// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// resolveKindAndCategory applies the kind/category resolution rule shared by
// create and update:
//   - with a category, its kind must match an explicitly supplied kind, and
//     supplies the kind when none was given;
//   - without a category, an explicit valid kind is required.
func resolveKindAndCategory(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	userID uuid.UUID,
	categoryID *uuid.UUID,
	kind entity.TransactionKind,
) (entity.TransactionKind, *entity.Category, error) {
	if categoryID == nil {
		if kind == "" {
			return "", nil, domainerror.NewTransactionError(
				domainerror.ErrCodeKindNotResolvable,
				"either a kind or a category is required",
				domainerror.ErrKindNotResolvable,
			)
		}
		if !entity.ValidTransactionKind(kind) {
			return "", nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionKind,
				"kind must be 'income', 'expense' or 'savings'",
				domainerror.ErrInvalidTransactionKind,
			)
		}
		return kind, nil, nil
	}

	category, err := categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return "", nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return "", nil, fmt.Errorf("failed to find category: %w", err)
	}
	if !category.VisibleTo(userID) {
		return "", nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	categoryKind := entity.TransactionKind(category.Kind)
	if kind == "" {
		return categoryKind, category, nil
	}
	if !entity.ValidTransactionKind(kind) {
		return "", nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be 'income', 'expense' or 'savings'",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if kind != categoryKind {
		return "", nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryKindMismatch,
			fmt.Sprintf("kind %q does not match category kind %q", kind, category.Kind),
			domainerror.ErrCategoryKindMismatch,
		)
	}

	return kind, category, nil
}
