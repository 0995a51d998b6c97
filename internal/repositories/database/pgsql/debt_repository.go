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

type PgxDebtRepository struct {
	pool *pgxpool.Pool
}

func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepository {
	return &PgxDebtRepository{pool: pool}
}

var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

func toDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:     m.DebtID,
		UserID:     m.UserID,
		LenderName: m.LenderName,
		Amount:     m.Amount,
		DueDate:    m.DueDate,
		Note:       m.Note,
		Status:     domain.DebtStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const debtColumns = `debt_id, user_id, lender_name, amount, due_date, note, status, created_at, created_by, last_updated_at, last_updated_by`

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.UserID,
		&m.LenderName,
		&m.Amount,
		&m.DueDate,
		&m.Note,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1;`

	m, err := scanDebt(r.pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debtID)
		}
		return nil, fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}

	debt := toDomainDebt(m)
	return &debt, nil
}

func (r *PgxDebtRepository) ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for user %s: %w", userID, err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, toDomainDebt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating debt rows: %w", err)
	}
	return debts, nil
}

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		debt.DebtID, debt.UserID, debt.LenderName, debt.Amount, debt.DueDate, debt.Note, string(debt.Status),
		debt.CreatedAt, debt.CreatedBy, debt.LastUpdatedAt, debt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt %s: %w", debt.DebtID, err)
	}
	return nil
}

func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	query := `
		UPDATE debts
		SET lender_name = $2, amount = $3, due_date = $4, note = $5, status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE debt_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		debt.DebtID, debt.LenderName, debt.Amount, debt.DueDate, debt.Note, string(debt.Status),
		debt.LastUpdatedAt, debt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt %s: %w", debt.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debt.DebtID)
	}
	return nil
}

func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	query := `DELETE FROM debts WHERE debt_id = $1;`

	tag, err := r.pool.Exec(ctx, query, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debtID)
	}
	return nil
}
