package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus tracks repayment state of money lent out by the user.
type LoanStatus string

const (
	LoanPending LoanStatus = "PENDING"
	LoanPaid    LoanStatus = "PAID"
)

// Loan is money the user has lent to someone else.
type Loan struct {
	LoanID       string          `json:"loanID"`
	UserID       string          `json:"userID"`
	BorrowerName string          `json:"borrowerName"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
	Note         string          `json:"note,omitempty"`
	Status       LoanStatus      `json:"status"`
	AuditFields
}
