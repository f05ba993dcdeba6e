// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// FixedPaymentModel represents the fixed_payments table in the database.
type FixedPaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate     time.Time       `gorm:"type:date;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the FixedPaymentModel.
func (FixedPaymentModel) TableName() string {
	return "fixed_payments"
}

// ToEntity converts a FixedPaymentModel to a domain FixedPayment entity.
func (m *FixedPaymentModel) ToEntity() *entity.FixedPayment {
	return &entity.FixedPayment{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FixedPaymentFromEntity creates a FixedPaymentModel from a domain FixedPayment entity.
func FixedPaymentFromEntity(payment *entity.FixedPayment) *FixedPaymentModel {
	return &FixedPaymentModel{
		ID:          payment.ID,
		UserID:      payment.UserID,
		Description: payment.Description,
		Amount:      payment.Amount,
		DueDate:     payment.DueDate,
		CreatedAt:   payment.CreatedAt,
		UpdatedAt:   payment.UpdatedAt,
	}
}
