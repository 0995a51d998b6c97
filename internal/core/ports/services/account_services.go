package services

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/dto"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves one of the user's accounts.
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all of the user's accounts, newest first.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data. Balances are not
// writable here; they only move through ledger operations.
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account; refused while transactions reference it.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountSvcFacade combines all account service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
