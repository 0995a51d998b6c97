package dto

import (
	"time"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to record a debt.
type CreateDebtRequest struct {
	LenderName string            `json:"lenderName" binding:"required"`
	Amount     decimal.Decimal   `json:"amount" binding:"required"`
	DueDate    time.Time         `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Note       string            `json:"note"`
	Status     domain.DebtStatus `json:"status" binding:"omitempty,oneof=PENDING PAID UNPAID"`
}

// UpdateDebtRequest defines the fields allowed for updating a debt.
type UpdateDebtRequest struct {
	LenderName *string            `json:"lenderName"`
	Amount     *decimal.Decimal   `json:"amount"`
	DueDate    *time.Time         `json:"dueDate" time_format:"2006-01-02"`
	Note       *string            `json:"note"`
	Status     *domain.DebtStatus `json:"status" binding:"omitempty,oneof=PENDING PAID UNPAID"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	DebtID     string            `json:"debtID"`
	LenderName string            `json:"lenderName"`
	Amount     decimal.Decimal   `json:"amount"`
	DueDate    string            `json:"dueDate"`
	Note       string            `json:"note,omitempty"`
	Status     domain.DebtStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ToDebtResponse converts a domain.Debt to its response DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:     d.DebtID,
		LenderName: d.LenderName,
		Amount:     d.Amount,
		DueDate:    d.DueDate.Format("2006-01-02"),
		Note:       d.Note,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDebtResponses converts a slice of domain debts.
func ToDebtResponses(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}
