package repositories

import (
	"context"
	"time"

	"github.com/finbook/finbook/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	Category string
	Kind     domain.TransactionKind
	From     *time.Time
	To       *time.Time
	Search   string // matched against the description, case-insensitive
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a user's transactions in reverse-chronological
	// order (most recent date first), optionally narrowed by filter.
	ListTransactionsByUser(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)

	// CountTransactionsByAccount reports how many transactions reference an account.
	CountTransactionsByAccount(ctx context.Context, accountID string) (int64, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction record.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces the mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction record permanently.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
