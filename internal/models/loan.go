package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan represents a row of money the user has lent out.
type Loan struct {
	LoanID       string          `db:"loan_id"`
	UserID       string          `db:"user_id"`
	BorrowerName string          `db:"borrower_name"`
	Amount       decimal.Decimal `db:"amount"`
	DueDate      time.Time       `db:"due_date"`
	Note         string          `db:"note"`
	Status       string          `db:"status"`
	AuditFields
}
