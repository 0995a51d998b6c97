package domain

import (
	"github.com/shopspring/decimal"
)

// Allocation describes how a slice of a salary income is deposited into one
// account. The order of the allocation table is user-defined and preserved.
type Allocation struct {
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
}

// Settings holds per-user configuration: the account used when a transaction
// does not name one, the display currency, and the salary allocation table.
type Settings struct {
	UserID           string       `json:"userID"`
	DefaultAccountID string       `json:"defaultAccountID"`
	Currency         string       `json:"currency"`
	Allocations      []Allocation `json:"allocations"`
	AuditFields
}

// AllocationTotal returns the sum of all allocation amounts.
func (s Settings) AllocationTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Allocations {
		total = total.Add(a.Amount)
	}
	return total
}
