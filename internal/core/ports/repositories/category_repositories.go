package repositories

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
)

// CategoryRepository persists user-owned transaction categories.
type CategoryRepository interface {
	// FindCategoryByID retrieves a category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategoriesByUser retrieves all of a user's categories.
	ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)

	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SaveCategories persists a batch of categories (used for template seeding).
	SaveCategories(ctx context.Context, categories []domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Transactions keep their category name.
	DeleteCategory(ctx context.Context, categoryID string) error
}
