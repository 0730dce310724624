// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "📝"

// Category represents a transaction category label owned by a user.
//
// Categories are a picker source for client UIs only; transactions store
// their category as free text and never reference this entity by id.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Icon      string
	Type      TransactionType
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
// Defaulting of the icon is applied in the application layer before calling
// this constructor.
func NewCategory(userID int64, name, icon string, categoryType TransactionType) *Category {
	return &Category{
		UserID:    userID,
		Name:      name,
		Icon:      icon,
		Type:      categoryType,
		CreatedAt: time.Now().UTC(),
	}
}
