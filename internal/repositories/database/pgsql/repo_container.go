package pgsql

import (
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository on one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		SettingsRepo:    newPgxSettingsRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		DebtRepo:        newPgxDebtRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
		CredentialRepo:  newPgxCredentialRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
