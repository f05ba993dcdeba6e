// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/domain/entity"
	domainerror "github.com/lanaapp/backend/internal/domain/error"
	"github.com/lanaapp/backend/internal/integration/persistence/model"
)

// fixedPaymentRepository implements the adapter.FixedPaymentRepository interface.
type fixedPaymentRepository struct {
	db *gorm.DB
}

// NewFixedPaymentRepository creates a new fixed payment repository instance.
func NewFixedPaymentRepository(db *gorm.DB) adapter.FixedPaymentRepository {
	return &fixedPaymentRepository{
		db: db,
	}
}

// Create creates a new fixed payment in the database.
func (r *fixedPaymentRepository) Create(ctx context.Context, payment *entity.FixedPayment) error {
	paymentModel := model.FixedPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a fixed payment by its ID.
func (r *fixedPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedPayment, error) {
	var paymentModel model.FixedPaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByUser retrieves all fixed payments for a given user.
func (r *fixedPaymentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedPayment, error) {
	var paymentModels []model.FixedPaymentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC, created_at ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.FixedPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// ExistsDuplicate checks whether another payment with the same description and
// amount exists for the user, excluding the given ID (uuid.Nil to check all).
func (r *fixedPaymentRepository) ExistsDuplicate(ctx context.Context, userID uuid.UUID, description string, amount decimal.Decimal, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.FixedPaymentModel{}).
		Where("user_id = ? AND description = ? AND amount = ?", userID, description, amount)

	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	result := query.Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing fixed payment in the database.
func (r *fixedPaymentRepository) Update(ctx context.Context, payment *entity.FixedPayment) error {
	paymentModel := model.FixedPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Save(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a fixed payment and detaches any transactions linked to it.
func (r *fixedPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TransactionModel{}).
			Where("fixed_payment_id = ?", id).
			Update("fixed_payment_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.FixedPaymentModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrFixedPaymentNotFound
		}
		return nil
	})
}
