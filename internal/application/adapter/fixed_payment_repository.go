// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// FixedPaymentRepository defines the interface for fixed payment persistence operations.
type FixedPaymentRepository interface {
	// Create creates a new fixed payment in the database.
	Create(ctx context.Context, payment *entity.FixedPayment) error

	// FindByID retrieves a fixed payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedPayment, error)

	// FindByUser retrieves all fixed payments for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedPayment, error)

	// ExistsDuplicate checks whether another payment with the same description
	// and amount exists for the user, excluding the given ID (uuid.Nil to
	// check against all).
	ExistsDuplicate(ctx context.Context, userID uuid.UUID, description string, amount decimal.Decimal, excludeID uuid.UUID) (bool, error)

	// Update updates an existing fixed payment in the database.
	Update(ctx context.Context, payment *entity.FixedPayment) error

	// Delete removes a fixed payment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
