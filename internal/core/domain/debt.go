package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus tracks repayment state of money the user owes.
type DebtStatus string

const (
	DebtPending DebtStatus = "PENDING"
	DebtPaid    DebtStatus = "PAID"
	DebtUnpaid  DebtStatus = "UNPAID"
)

// Debt is money the user owes to a lender. Debts are bookkeeping records only;
// they never touch account balances.
type Debt struct {
	DebtID     string          `json:"debtID"`
	UserID     string          `json:"userID"`
	LenderName string          `json:"lenderName"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"dueDate"`
	Note       string          `json:"note,omitempty"`
	Status     DebtStatus      `json:"status"`
	AuditFields
}
