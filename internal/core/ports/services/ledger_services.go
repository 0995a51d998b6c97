package services

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/dto"
)

// LedgerReaderSvc defines read operations over recorded transactions.
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves one of the user's transactions.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions most recent first,
	// optionally filtered.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerWriterSvc defines the balance-mutating transaction operations. Every
// operation takes the caller's settings snapshot explicitly; the service keeps
// no ambient user or settings state.
type LedgerWriterSvc interface {
	// CreateTransaction records a transaction and applies its balance effect,
	// distributing salary income across the configured allocations.
	CreateTransaction(ctx context.Context, userID string, settings domain.Settings, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction reverses the original balance effect and applies the new
	// one, then replaces the stored record.
	UpdateTransaction(ctx context.Context, userID string, settings domain.Settings, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction reverses the transaction's balance effect and removes
	// the record.
	DeleteTransaction(ctx context.Context, userID string, settings domain.Settings, transactionID string) error
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
