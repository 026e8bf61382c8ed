// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a per-user transaction bucket. Category names are
// unique within a single user, not globally.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsIncome reports whether transactions in this category are income.
func (c *Category) IsIncome() bool {
	return c.Type == CategoryTypeIncome
}

// NewCategory creates a new Category entity. Defaulting of color and icon is
// the use-case layer's responsibility; this constructor stores what it gets.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Color:     color,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
