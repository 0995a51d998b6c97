package services

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/dto"
)

// DebtSvcFacade manages debts (money the user owes).
type DebtSvcFacade interface {
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)
	CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error)
	UpdateDebt(ctx context.Context, userID string, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)
	DeleteDebt(ctx context.Context, userID string, debtID string) error
}

// LoanSvcFacade manages loans (money the user has lent out).
type LoanSvcFacade interface {
	ListLoans(ctx context.Context, userID string) ([]domain.Loan, error)
	CreateLoan(ctx context.Context, userID string, req dto.CreateLoanRequest) (*domain.Loan, error)
	UpdateLoan(ctx context.Context, userID string, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, userID string, loanID string) error
}

// CredentialSvcFacade manages personal credential notes.
type CredentialSvcFacade interface {
	ListCredentials(ctx context.Context, userID string) ([]domain.Credential, error)
	CreateCredential(ctx context.Context, userID string, req dto.CreateCredentialRequest) (*domain.Credential, error)
	UpdateCredential(ctx context.Context, userID string, credentialID string, req dto.UpdateCredentialRequest) (*domain.Credential, error)
	DeleteCredential(ctx context.Context, userID string, credentialID string) error
}
