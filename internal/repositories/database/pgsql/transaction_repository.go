package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	"github.com/finbook/finbook/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Date:          d.Date,
		Description:   d.Description,
		Amount:        d.Amount,
		Kind:          string(d.Kind),
		Category:      d.Category,
		AccountID:     d.AccountID,
		TxnGroup:      string(d.Group),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Date:          m.Date,
		Description:   m.Description,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		Category:      m.Category,
		AccountID:     m.AccountID,
		Group:         domain.TransactionGroup(m.TxnGroup),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const transactionColumns = `transaction_id, user_id, date, description, amount, kind, category, account_id, txn_group, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var accountID sql.NullString // NULL for salary incomes with no nominal account
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Date,
		&m.Description,
		&m.Amount,
		&m.Kind,
		&m.Category,
		&accountID,
		&m.TxnGroup,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	m.AccountID = accountID.String
	return m, err
}

// SaveTransaction inserts a new transaction record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Date,
		m.Description,
		m.Amount,
		m.Kind,
		m.Category,
		nullableString(m.AccountID),
		m.TxnGroup,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByUser retrieves a user's transactions in reverse-chronological
// order, optionally narrowed by the filter.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`)
	args := []any{userID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		sb.WriteString(` AND category = $` + strconv.Itoa(len(args)))
	}
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		sb.WriteString(` AND kind = $` + strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		sb.WriteString(` AND date >= $` + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		sb.WriteString(` AND date < $` + strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		sb.WriteString(` AND description ILIKE $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY date DESC, created_at DESC;`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}
	return txns, nil
}

// CountTransactionsByAccount reports how many transactions reference an account.
func (r *PgxTransactionRepository) CountTransactionsByAccount(ctx context.Context, accountID string) (int64, error) {
	query := `SELECT count(*) FROM transactions WHERE account_id = $1;`

	var count int64
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for account %s: %w", accountID, err)
	}
	return count, nil
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET date = $2, description = $3, amount = $4, kind = $5, category = $6, account_id = $7, txn_group = $8, last_updated_at = $9, last_updated_by = $10
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.Date,
		m.Description,
		m.Amount,
		m.Kind,
		m.Category,
		nullableString(m.AccountID),
		m.TxnGroup,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}
	return nil
}

// DeleteTransaction removes a transaction record permanently.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`

	tag, err := r.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
