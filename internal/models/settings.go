package models

import (
	"github.com/shopspring/decimal"
)

// Settings represents the per-user settings row. Allocations live in their own
// table, ordered by position.
type Settings struct {
	UserID           string `db:"user_id"`
	DefaultAccountID string `db:"default_account_id"`
	Currency         string `db:"currency"`
	AuditFields
}

// SalaryAllocation is one ordered row of a user's salary allocation table.
type SalaryAllocation struct {
	UserID    string          `db:"user_id"`
	Position  int             `db:"position"`
	AccountID string          `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
}
