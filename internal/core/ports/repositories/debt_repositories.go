package repositories

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
)

// DebtRepository persists debts (money the user owes).
type DebtRepository interface {
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)
	ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error)
	SaveDebt(ctx context.Context, debt domain.Debt) error
	UpdateDebt(ctx context.Context, debt domain.Debt) error
	DeleteDebt(ctx context.Context, debtID string) error
}
