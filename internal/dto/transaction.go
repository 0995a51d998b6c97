package dto

import (
	"time"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a new transaction.
// Amount is the magnitude as entered by the user; the sign is derived from Kind
// and never accepted as input.
type CreateTransactionRequest struct {
	Date        time.Time               `json:"date" binding:"required" time_format:"2006-01-02"`
	Description string                  `json:"description"`
	Amount      decimal.Decimal         `json:"amount" binding:"required"`
	Kind        domain.TransactionKind  `json:"kind" binding:"required,transactionkind"`
	Category    string                  `json:"category" binding:"required"`
	AccountID   string                  `json:"accountID"`
	Group       domain.TransactionGroup `json:"group"`
}

// UpdateTransactionRequest carries the replacement values for an existing
// transaction. The update path treats every transaction generically through its
// single AccountID; there is no salary re-allocation on edit.
type UpdateTransactionRequest struct {
	Date        time.Time               `json:"date" binding:"required" time_format:"2006-01-02"`
	Description string                  `json:"description"`
	Amount      decimal.Decimal         `json:"amount" binding:"required"`
	Kind        domain.TransactionKind  `json:"kind" binding:"required,transactionkind"`
	Category    string                  `json:"category" binding:"required"`
	AccountID   string                  `json:"accountID" binding:"required"`
	Group       domain.TransactionGroup `json:"group"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Category string `form:"category"`
	Kind     string `form:"kind"`
	From     string `form:"from"` // YYYY-MM-DD
	To       string `form:"to"`   // YYYY-MM-DD
	Search   string `form:"search"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                  `json:"transactionID"`
	Date          string                  `json:"date"`
	Description   string                  `json:"description"`
	Amount        decimal.Decimal         `json:"amount"`
	Kind          domain.TransactionKind  `json:"kind"`
	Category      string                  `json:"category"`
	AccountID     string                  `json:"accountID"`
	Group         domain.TransactionGroup `json:"group"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date.Format("2006-01-02"),
		Description:   t.Description,
		Amount:        t.Amount,
		Kind:          t.Kind,
		Category:      t.Category,
		AccountID:     t.AccountID,
		Group:         t.Group,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
