// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind represents the kind of transactions a category groups.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindSavings CategoryKind = "savings"
)

// ValidCategoryKind reports whether k is one of the three supported kinds.
func ValidCategoryKind(k CategoryKind) bool {
	switch k {
	case CategoryKindIncome, CategoryKindExpense, CategoryKindSavings:
		return true
	}
	return false
}

// Category groups transactions and budgets. A nil UserID marks a shared
// default category visible to every user.
type Category struct {
	ID        uuid.UUID
	Name      string
	Kind      CategoryKind
	UserID    *uuid.UUID
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a user-owned Category.
func NewCategory(name string, kind CategoryKind, userID uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		UserID:    &userID,
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDefaultCategory creates a shared default Category with no owner.
func NewDefaultCategory(name string, kind CategoryKind) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VisibleTo reports whether the category can be used by the given user:
// either it is a shared default or it belongs to them.
func (c *Category) VisibleTo(userID uuid.UUID) bool {
	return c.UserID == nil || *c.UserID == userID
}

// OwnedBy reports whether the category belongs to the given user. Shared
// defaults are owned by nobody and cannot be edited through user flows.
func (c *Category) OwnedBy(userID uuid.UUID) bool {
	return c.UserID != nil && *c.UserID == userID
}
