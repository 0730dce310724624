// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByUser retrieves all categories for a given user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Category, error)

	// Delete removes a category.
	Delete(ctx context.Context, id int64) error
}
