package dto

import (
	"time"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to record a loan.
type CreateLoanRequest struct {
	BorrowerName string            `json:"borrowerName" binding:"required"`
	Amount       decimal.Decimal   `json:"amount" binding:"required"`
	DueDate      time.Time         `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Note         string            `json:"note"`
	Status       domain.LoanStatus `json:"status" binding:"omitempty,oneof=PENDING PAID"`
}

// UpdateLoanRequest defines the fields allowed for updating a loan.
type UpdateLoanRequest struct {
	BorrowerName *string            `json:"borrowerName"`
	Amount       *decimal.Decimal   `json:"amount"`
	DueDate      *time.Time         `json:"dueDate" time_format:"2006-01-02"`
	Note         *string            `json:"note"`
	Status       *domain.LoanStatus `json:"status" binding:"omitempty,oneof=PENDING PAID"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID       string            `json:"loanID"`
	BorrowerName string            `json:"borrowerName"`
	Amount       decimal.Decimal   `json:"amount"`
	DueDate      string            `json:"dueDate"`
	Note         string            `json:"note,omitempty"`
	Status       domain.LoanStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// ToLoanResponse converts a domain.Loan to its response DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:       l.LoanID,
		BorrowerName: l.BorrowerName,
		Amount:       l.Amount,
		DueDate:      l.DueDate.Format("2006-01-02"),
		Note:         l.Note,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt,
	}
}

// ToLoanResponses converts a slice of domain loans.
func ToLoanResponses(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i := range loans {
		res[i] = ToLoanResponse(&loans[i])
	}
	return res
}
