// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of a transaction.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindSavings TransactionKind = "savings"
)

// ValidTransactionKind reports whether k is one of the three supported kinds.
func ValidTransactionKind(k TransactionKind) bool {
	switch k {
	case TransactionKindIncome, TransactionKindExpense, TransactionKindSavings:
		return true
	}
	return false
}

// Label returns the title-cased kind, used as the display category for
// transactions without a category linkage.
func (k TransactionKind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[0])) + string(k[1:])
}

// Transaction is a single dated money movement. Amount is always a positive
// magnitude; the sign is carried by Kind. A nil CategoryID means the
// transaction is uncategorized and its Kind serves as the display label.
type Transaction struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Amount         decimal.Decimal
	Kind           TransactionKind
	CategoryID     *uuid.UUID
	Description    string
	Date           time.Time // calendar date, time part zeroed
	IsRecurring    bool
	FixedPaymentID *uuid.UUID // set when the transaction was spawned by a fixed payment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	kind TransactionKind,
	categoryID *uuid.UUID,
	description string,
	date time.Time,
	isRecurring bool,
	fixedPaymentID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:             uuid.New(),
		UserID:         userID,
		Amount:         amount,
		Kind:           kind,
		CategoryID:     categoryID,
		Description:    description,
		Date:           date,
		IsRecurring:    isRecurring,
		FixedPaymentID: fixedPaymentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// TransactionWithCategory pairs a transaction with its resolved category,
// when one is linked.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// CategoryLabel returns the display label for grouping: the category name
// when present and non-empty, otherwise the title-cased kind.
func (t *TransactionWithCategory) CategoryLabel() string {
	if t.Category != nil && t.Category.Name != "" {
		return t.Category.Name
	}
	return t.Transaction.Kind.Label()
}
