package repositories

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
)

// CredentialRepository persists personal credential notes.
type CredentialRepository interface {
	FindCredentialByID(ctx context.Context, credentialID string) (*domain.Credential, error)
	ListCredentialsByUser(ctx context.Context, userID string) ([]domain.Credential, error)
	SaveCredential(ctx context.Context, credential domain.Credential) error
	UpdateCredential(ctx context.Context, credential domain.Credential) error
	DeleteCredential(ctx context.Context, credentialID string) error
}
