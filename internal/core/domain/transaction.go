package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates the direction of a transaction's monetary effect.
// Windfall covers irregular events and is treated like expense for balance math.
type TransactionKind string

const (
	KindIncome   TransactionKind = "INCOME"
	KindExpense  TransactionKind = "EXPENSE"
	KindWindfall TransactionKind = "WINDFALL"
)

// TransactionGroup is a coarse classification used for reporting only; it never
// participates in balance math.
type TransactionGroup string

const (
	GroupIncome    TransactionGroup = "INCOME"
	GroupExpense   TransactionGroup = "EXPENSE"
	GroupSaveShare TransactionGroup = "SAVE_AND_SHARE"
	GroupWindfall  TransactionGroup = "WINDFALL"
)

// CategorySalary is the category name whose income transactions are distributed
// across accounts according to the user's configured allocations.
const CategorySalary = "Salary"

// Transaction is a single recorded income/expense/windfall event.
// Amount is stored signed: negative for expense/windfall, positive for income.
// Category is a weak reference by name, AccountID a weak reference by id; for a
// Salary income the AccountID is semantically unused because the allocation table
// decides which accounts are credited.
type Transaction struct {
	TransactionID string           `json:"transactionID"` // Primary key (UUID)
	UserID        string           `json:"userID"`        // FK -> users.user_id
	Date          time.Time        `json:"date"`          // Calendar date, no time component
	Description   string           `json:"description"`   // Optional free text
	Amount        decimal.Decimal  `json:"amount"`        // Signed
	Kind          TransactionKind  `json:"kind"`
	Category      string           `json:"category"` // Weak reference to Category by name
	AccountID     string           `json:"accountID"`
	Group         TransactionGroup `json:"group"`
	AuditFields
}

// IsSalaryIncome reports whether the transaction follows the multi-account
// salary-allocation rule rather than single-account balance math.
func (t Transaction) IsSalaryIncome() bool {
	return t.Kind == KindIncome && t.Category == CategorySalary
}
