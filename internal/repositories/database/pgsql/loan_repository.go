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

type PgxLoanRepository struct {
	pool *pgxpool.Pool
}

func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepository {
	return &PgxLoanRepository{pool: pool}
}

var _ portsrepo.LoanRepository = (*PgxLoanRepository)(nil)

func toDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:       m.LoanID,
		UserID:       m.UserID,
		BorrowerName: m.BorrowerName,
		Amount:       m.Amount,
		DueDate:      m.DueDate,
		Note:         m.Note,
		Status:       domain.LoanStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const loanColumns = `loan_id, user_id, borrower_name, amount, due_date, note, status, created_at, created_by, last_updated_at, last_updated_by`

func scanLoan(row pgx.Row) (models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.UserID,
		&m.BorrowerName,
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

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`

	m, err := scanLoan(r.pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}

	loan := toDomainLoan(m)
	return &loan, nil
}

func (r *PgxLoanRepository) ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans for user %s: %w", userID, err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		m, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, toDomainLoan(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating loan rows: %w", err)
	}
	return loans, nil
}

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		loan.LoanID, loan.UserID, loan.BorrowerName, loan.Amount, loan.DueDate, loan.Note, string(loan.Status),
		loan.CreatedAt, loan.CreatedBy, loan.LastUpdatedAt, loan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save loan %s: %w", loan.LoanID, err)
	}
	return nil
}

func (r *PgxLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	query := `
		UPDATE loans
		SET borrower_name = $2, amount = $3, due_date = $4, note = $5, status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE loan_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		loan.LoanID, loan.BorrowerName, loan.Amount, loan.DueDate, loan.Note, string(loan.Status),
		loan.LastUpdatedAt, loan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan %s: %w", loan.LoanID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loan.LoanID)
	}
	return nil
}

func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, loanID string) error {
	query := `DELETE FROM loans WHERE loan_id = $1;`

	tag, err := r.pool.Exec(ctx, query, loanID)
	if err != nil {
		return fmt.Errorf("failed to delete loan %s: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
	}
	return nil
}
