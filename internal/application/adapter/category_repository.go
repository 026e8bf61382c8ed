// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Every lookup is scoped to the owning user: a category id belonging to a
// different user behaves exactly like a missing id.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category by id, scoped to the owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndUser checks if a category with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// DeleteAndDetach removes a category and clears the category reference on
	// the owner's transactions in the same database transaction. Dependent
	// transactions are never deleted.
	DeleteAndDetach(ctx context.Context, id, userID uuid.UUID) error
}
