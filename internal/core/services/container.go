package services

import (
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and returns
// the container the handlers are built on.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		Ledger:     NewLedgerService(repos.TransactionRepo, repos.AccountRepo),
		Account:    NewAccountService(repos.AccountRepo, repos.TransactionRepo),
		Settings:   NewSettingsService(repos.SettingsRepo, repos.AccountRepo),
		Category:   NewCategoryService(repos.CategoryRepo),
		Debt:       NewDebtService(repos.DebtRepo),
		Loan:       NewLoanService(repos.LoanRepo),
		Credential: NewCredentialService(repos.CredentialRepo),
		Reporting:  NewReportingService(repos.TransactionRepo),
		User:       userService,
		Auth:       NewAuthService(cfg, repos.UserRepo, userService),
	}
}
