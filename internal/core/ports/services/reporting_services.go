package services

import (
	"context"

	"github.com/finbook/finbook/internal/dto"
)

// ReportingSvcFacade computes dashboard aggregations over the user's
// transactions. Pure grouping and summing; never mutates anything.
type ReportingSvcFacade interface {
	// GetDashboard returns per-group totals, category breakdowns and the
	// monthly trend for the selected period.
	GetDashboard(ctx context.Context, userID string, params dto.ReportingParams) (*dto.DashboardResponse, error)

	// GetIncomeSummary returns count/average/max/min statistics over income
	// transactions for the selected period.
	GetIncomeSummary(ctx context.Context, userID string, params dto.ReportingParams) (*dto.IncomeSummary, error)
}
