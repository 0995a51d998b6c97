package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a balance-holding account row.
type Account struct {
	AccountID string          `db:"account_id"`
	OwnerID   string          `db:"owner_id"`
	Name      string          `db:"name"`
	Kind      string          `db:"kind"`
	Amount    decimal.Decimal `db:"amount"`
	AuditFields
}
