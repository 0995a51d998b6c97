package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a recorded transaction row. Amount is stored signed.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Date          time.Time       `db:"date"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Kind          string          `db:"kind"`
	Category      string          `db:"category"`
	AccountID     string          `db:"account_id"`
	TxnGroup      string          `db:"txn_group"`
	AuditFields
}
