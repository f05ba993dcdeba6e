// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisibleToUser retrieves the user's own categories plus the shared defaults.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameForUser checks whether a category with the given name is
	// already visible to the user (own or shared default).
	ExistsByNameForUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category; linked transactions keep their kind and fall
	// back to it for display, and budgets for the category are removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
