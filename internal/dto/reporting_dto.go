package dto

import (
	"github.com/shopspring/decimal"
)

// ReportingParams selects the reporting period. Mode month uses the month of
// Date, mode year the year of Date, mode all ignores Date.
type ReportingParams struct {
	Mode string `form:"mode,default=month" binding:"omitempty,oneof=month year all"`
	Date string `form:"date"` // YYYY-MM-DD, defaults to today
}

// DashboardSummary holds the per-group totals for the selected period.
// All values are magnitudes.
type DashboardSummary struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	TotalSaveShare decimal.Decimal `json:"totalSaveShare"`
	TotalWindfall  decimal.Decimal `json:"totalWindfall"`
}

// CategoryStat is one slice of the per-category breakdown.
type CategoryStat struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// MonthlyTrend is one month of the income/expense trend series.
type MonthlyTrend struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// IncomeSummary aggregates income magnitudes for the selected period.
type IncomeSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TransactionCount int             `json:"transactionCount"`
	AverageIncome    decimal.Decimal `json:"averageIncome"`
	MaxIncome        decimal.Decimal `json:"maxIncome"`
	MinIncome        decimal.Decimal `json:"minIncome"`
}

// DashboardResponse bundles everything the dashboard page renders.
type DashboardResponse struct {
	Summary           DashboardSummary `json:"summary"`
	ExpenseByCategory []CategoryStat   `json:"expenseByCategory"`
	IncomeByCategory  []CategoryStat   `json:"incomeByCategory"`
	MonthlyTrend      []MonthlyTrend   `json:"monthlyTrend"`
}
