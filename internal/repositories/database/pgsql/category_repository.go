package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	"github.com/finbook/finbook/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		UserID:     d.UserID,
		Name:       d.Name,
		Kind:       string(d.Kind),
		TxnGroup:   string(d.Group),
		Color:      d.Color,
		Icon:       d.Icon,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		UserID:     m.UserID,
		Name:       m.Name,
		Kind:       domain.TransactionKind(m.Kind),
		Group:      domain.TransactionGroup(m.TxnGroup),
		Color:      m.Color,
		Icon:       m.Icon,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const categoryColumns = `category_id, user_id, name, kind, txn_group, color, icon, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.Kind,
		&m.TxnGroup,
		&m.Color,
		&m.Icon,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	m, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	category := toDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CategoryID, m.UserID, m.Name, m.Kind, m.TxnGroup, m.Color, m.Icon,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// SaveCategories persists a batch of categories in one database transaction.
// Used when seeding the default template set for a new user.
func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin category batch insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for i := range categories {
		m := toModelCategory(categories[i])
		if _, err := tx.Exec(ctx, query,
			m.CategoryID, m.UserID, m.Name, m.Kind, m.TxnGroup, m.Color, m.Icon,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit category batch insert: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := toModelCategory(category)

	query := `
		UPDATE categories
		SET name = $2, color = $3, icon = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, m.CategoryID, m.Name, m.Color, m.Icon, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, m.CategoryID)
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`

	tag, err := r.pool.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}
	return nil
}
