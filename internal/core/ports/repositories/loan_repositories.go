package repositories

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
)

// LoanRepository persists loans (money the user has lent out).
type LoanRepository interface {
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error)
	SaveLoan(ctx context.Context, loan domain.Loan) error
	UpdateLoan(ctx context.Context, loan domain.Loan) error
	DeleteLoan(ctx context.Context, loanID string) error
}
