package services

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/dto"
)

// CategorySvcFacade manages user-owned transaction categories.
type CategorySvcFacade interface {
	// ListCategories retrieves the user's categories, seeding the default
	// template set for a user who has none yet.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}
