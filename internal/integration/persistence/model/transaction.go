// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanaapp/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind           string          `gorm:"type:varchar(10);not null;index"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	IsRecurring    bool            `gorm:"default:false"`
	FixedPaymentID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category     *CategoryModel     `gorm:"foreignKey:CategoryID;references:ID"`
	User         *UserModel         `gorm:"foreignKey:UserID;references:ID"`
	FixedPayment *FixedPaymentModel `gorm:"foreignKey:FixedPaymentID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Kind:           entity.TransactionKind(m.Kind),
		CategoryID:     m.CategoryID,
		Description:    m.Description,
		Date:           m.Date,
		IsRecurring:    m.IsRecurring,
		FixedPaymentID: m.FixedPaymentID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its Category to a
// TransactionWithCategory entity.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:             transaction.ID,
		UserID:         transaction.UserID,
		Amount:         transaction.Amount,
		Kind:           string(transaction.Kind),
		CategoryID:     transaction.CategoryID,
		Description:    transaction.Description,
		Date:           transaction.Date,
		IsRecurring:    transaction.IsRecurring,
		FixedPaymentID: transaction.FixedPaymentID,
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}
}
