package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt represents a row of money the user owes.
type Debt struct {
	DebtID     string          `db:"debt_id"`
	UserID     string          `db:"user_id"`
	LenderName string          `db:"lender_name"`
	Amount     decimal.Decimal `db:"amount"`
	DueDate    time.Time       `db:"due_date"`
	Note       string          `db:"note"`
	Status     string          `db:"status"`
	AuditFields
}
