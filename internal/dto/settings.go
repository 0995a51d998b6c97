package dto

import (
	"github.com/finbook/finbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AllocationInput is one row of the salary allocation table.
type AllocationInput struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// UpdateSettingsRequest replaces the user's settings. The allocation table is
// replaced wholesale, preserving the submitted order.
type UpdateSettingsRequest struct {
	DefaultAccountID string            `json:"defaultAccountID" binding:"required"`
	Currency         string            `json:"currency" binding:"required,oneof=VND JPY USD"`
	Allocations      []AllocationInput `json:"allocations"`
}

// SettingsResponse defines the data returned for user settings.
type SettingsResponse struct {
	DefaultAccountID string              `json:"defaultAccountID"`
	Currency         string              `json:"currency"`
	Allocations      []domain.Allocation `json:"allocations"`
}

// ToSettingsResponse converts domain.Settings to its response DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		DefaultAccountID: s.DefaultAccountID,
		Currency:         s.Currency,
		Allocations:      s.Allocations,
	}
}
