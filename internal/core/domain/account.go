package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind classifies a balance-holding account.
type AccountKind string

const (
	AccountCash   AccountKind = "CASH"
	AccountBank   AccountKind = "BANK"
	AccountCredit AccountKind = "CREDIT"
	AccountSaving AccountKind = "SAVING"
	AccountWallet AccountKind = "WALLET"
)

// Account represents a named balance-holding entity owned by a single user.
// Its Amount is mutated only as a side effect of transaction create/update/delete;
// credit accounts may carry a negative balance.
type Account struct {
	AccountID string          `json:"accountID"` // Primary key (UUID)
	OwnerID   string          `json:"ownerID"`   // FK -> users.user_id
	Name      string          `json:"name"`      // User-defined name
	Kind      AccountKind     `json:"kind"`      // CASH, BANK, CREDIT, SAVING, WALLET
	Amount    decimal.Decimal `json:"amount"`    // Current balance, signed
	AuditFields
}
