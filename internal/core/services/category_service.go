package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/google/uuid"
)

// CategoryService manages user-owned transaction categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func NewCategoryService(categoryRepo portsrepo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories retrieves the user's categories. A user with no categories
// gets the default template set seeded first.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categories, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) > 0 {
		return categories, nil
	}

	seeded := s.defaultCategoriesFor(userID)
	if err := s.categoryRepo.SaveCategories(ctx, seeded); err != nil {
		logger.Error("Failed to seed default categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	logger.Info("Default categories seeded", slog.Int("count", len(seeded)))
	return seeded, nil
}

func (s *CategoryService) defaultCategoriesFor(userID string) []domain.Category {
	now := time.Now()
	categories := make([]domain.Category, len(domain.DefaultCategories))
	for i, tmpl := range domain.DefaultCategories {
		c := tmpl
		c.CategoryID = uuid.NewString()
		c.UserID = userID
		c.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
		categories[i] = c
	}
	return categories
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Kind:       req.Kind,
		Group:      req.Group,
		Color:      req.Color,
		Icon:       req.Icon,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("category_id", category.CategoryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if category.UserID != userID {
		return nil, fmt.Errorf("%w: category %s", apperrors.ErrForbidden, categoryID)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a category. Transactions keep the category name they
// were recorded with; there is no cascade.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.UserID != userID {
		return fmt.Errorf("%w: category %s", apperrors.ErrForbidden, categoryID)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}
