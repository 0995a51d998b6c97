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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{pool: pool}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// FindSettingsByUser retrieves a user's settings with allocations in their
// configured order.
func (r *PgxSettingsRepository) FindSettingsByUser(ctx context.Context, userID string) (*domain.Settings, error) {
	query := `
		SELECT user_id, default_account_id, currency, created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE user_id = $1;
	`
	var m models.Settings
	var defaultAccountID = nullableString("")
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&defaultAccountID,
		&m.Currency,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: settings for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}
	m.DefaultAccountID = defaultAccountID.String

	allocations, err := r.listAllocations(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := domain.Settings{
		UserID:           m.UserID,
		DefaultAccountID: m.DefaultAccountID,
		Currency:         m.Currency,
		Allocations:      allocations,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &settings, nil
}

func (r *PgxSettingsRepository) listAllocations(ctx context.Context, userID string) ([]domain.Allocation, error) {
	query := `
		SELECT account_id, amount
		FROM salary_allocations
		WHERE user_id = $1
		ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations for user %s: %w", userID, err)
	}
	defer rows.Close()

	allocations := []domain.Allocation{}
	for rows.Next() {
		var a domain.Allocation
		if err := rows.Scan(&a.AccountID, &a.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan allocation row: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating allocation rows: %w", err)
	}
	return allocations, nil
}

// SaveSettings persists settings for a user who has none yet.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	query := `
		INSERT INTO settings (user_id, default_account_id, currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		settings.UserID,
		nullableString(settings.DefaultAccountID),
		settings.Currency,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for user %s: %w", settings.UserID, err)
	}

	if len(settings.Allocations) > 0 {
		if err := r.replaceAllocations(ctx, settings.UserID, settings.Allocations); err != nil {
			return err
		}
	}
	return nil
}

// UpdateSettings replaces a user's settings, including the allocation table.
// The settings row and allocation rows are written in one database transaction
// so a partially replaced allocation table is never observable.
func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin settings update: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE settings
		SET default_account_id = $2, currency = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		settings.UserID,
		nullableString(settings.DefaultAccountID),
		settings.Currency,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings for user %s: %w", settings.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: settings for user %s", apperrors.ErrNotFound, settings.UserID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM salary_allocations WHERE user_id = $1;`, settings.UserID); err != nil {
		return fmt.Errorf("failed to clear allocations for user %s: %w", settings.UserID, err)
	}
	for i, a := range settings.Allocations {
		if _, err := tx.Exec(ctx,
			`INSERT INTO salary_allocations (user_id, position, account_id, amount) VALUES ($1, $2, $3, $4);`,
			settings.UserID, i, a.AccountID, a.Amount,
		); err != nil {
			return fmt.Errorf("failed to insert allocation for user %s: %w", settings.UserID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit settings update: %w", err)
	}
	return nil
}

func (r *PgxSettingsRepository) replaceAllocations(ctx context.Context, userID string, allocations []domain.Allocation) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM salary_allocations WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to clear allocations for user %s: %w", userID, err)
	}
	for i := range allocations {
		m := models.SalaryAllocation{
			UserID:    userID,
			Position:  i,
			AccountID: allocations[i].AccountID,
			Amount:    allocations[i].Amount,
		}
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO salary_allocations (user_id, position, account_id, amount) VALUES ($1, $2, $3, $4);`,
			m.UserID, m.Position, m.AccountID, m.Amount,
		); err != nil {
			return fmt.Errorf("failed to insert allocation for user %s: %w", userID, err)
		}
	}
	return nil
}
