package repositories

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByOwner retrieves all accounts owned by a user, newest first.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details (not its balance).
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SetAccountBalance overwrites an account's balance with newAmount. This is an
	// unconditional overwrite, not a delta apply; the caller computes the new value
	// from a just-read current balance.
	SetAccountBalance(ctx context.Context, accountID string, newAmount decimal.Decimal) (*domain.Account, error)

	// DeleteAccount removes an account permanently. Implementations must refuse
	// the delete while transactions still reference the account.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
