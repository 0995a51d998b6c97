package dto

import (
	"github.com/finbook/finbook/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string                  `json:"name" binding:"required"`
	Kind  domain.TransactionKind  `json:"kind" binding:"required,transactionkind"`
	Group domain.TransactionGroup `json:"group" binding:"required"`
	Color string                  `json:"color"`
	Icon  string                  `json:"icon"`
}

// UpdateCategoryRequest defines the fields allowed for updating a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string                  `json:"categoryID"`
	Name       string                  `json:"name"`
	Kind       domain.TransactionKind  `json:"kind"`
	Group      domain.TransactionGroup `json:"group"`
	Color      string                  `json:"color,omitempty"`
	Icon       string                  `json:"icon,omitempty"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Kind:       c.Kind,
		Group:      c.Group,
		Color:      c.Color,
		Icon:       c.Icon,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
