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

type PgxCredentialRepository struct {
	pool *pgxpool.Pool
}

func newPgxCredentialRepository(pool *pgxpool.Pool) portsrepo.CredentialRepository {
	return &PgxCredentialRepository{pool: pool}
}

var _ portsrepo.CredentialRepository = (*PgxCredentialRepository)(nil)

func toDomainCredential(m models.Credential) domain.Credential {
	return domain.Credential{
		CredentialID: m.CredentialID,
		UserID:       m.UserID,
		Type:         m.Type,
		Name:         m.Name,
		Username:     m.Username,
		Email:        m.Email,
		Phone:        m.Phone,
		Password:     m.Password,
		Note:         m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const credentialColumns = `credential_id, user_id, type, name, username, email, phone, password, note, created_at, created_by, last_updated_at, last_updated_by`

func scanCredential(row pgx.Row) (models.Credential, error) {
	var m models.Credential
	err := row.Scan(
		&m.CredentialID,
		&m.UserID,
		&m.Type,
		&m.Name,
		&m.Username,
		&m.Email,
		&m.Phone,
		&m.Password,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCredentialRepository) FindCredentialByID(ctx context.Context, credentialID string) (*domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM personal_credentials WHERE credential_id = $1;`

	m, err := scanCredential(r.pool.QueryRow(ctx, query, credentialID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: credential %s", apperrors.ErrNotFound, credentialID)
		}
		return nil, fmt.Errorf("failed to find credential %s: %w", credentialID, err)
	}

	credential := toDomainCredential(m)
	return &credential, nil
}

func (r *PgxCredentialRepository) ListCredentialsByUser(ctx context.Context, userID string) ([]domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM personal_credentials WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials for user %s: %w", userID, err)
	}
	defer rows.Close()

	var credentials []domain.Credential
	for rows.Next() {
		m, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		credentials = append(credentials, toDomainCredential(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating credential rows: %w", err)
	}
	return credentials, nil
}

func (r *PgxCredentialRepository) SaveCredential(ctx context.Context, credential domain.Credential) error {
	query := `
		INSERT INTO personal_credentials (` + credentialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		credential.CredentialID, credential.UserID, credential.Type, credential.Name,
		credential.Username, credential.Email, credential.Phone, credential.Password, credential.Note,
		credential.CreatedAt, credential.CreatedBy, credential.LastUpdatedAt, credential.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save credential %s: %w", credential.CredentialID, err)
	}
	return nil
}

func (r *PgxCredentialRepository) UpdateCredential(ctx context.Context, credential domain.Credential) error {
	query := `
		UPDATE personal_credentials
		SET type = $2, name = $3, username = $4, email = $5, phone = $6, password = $7, note = $8, last_updated_at = $9, last_updated_by = $10
		WHERE credential_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		credential.CredentialID, credential.Type, credential.Name,
		credential.Username, credential.Email, credential.Phone, credential.Password, credential.Note,
		credential.LastUpdatedAt, credential.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update credential %s: %w", credential.CredentialID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: credential %s", apperrors.ErrNotFound, credential.CredentialID)
	}
	return nil
}

func (r *PgxCredentialRepository) DeleteCredential(ctx context.Context, credentialID string) error {
	query := `DELETE FROM personal_credentials WHERE credential_id = $1;`

	tag, err := r.pool.Exec(ctx, query, credentialID)
	if err != nil {
		return fmt.Errorf("failed to delete credential %s: %w", credentialID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: credential %s", apperrors.ErrNotFound, credentialID)
	}
	return nil
}
