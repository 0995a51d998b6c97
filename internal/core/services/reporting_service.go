package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/shopspring/decimal"
)

// ReportingService computes dashboard aggregations over the user's recorded
// transactions. It only reads; all math is grouping and summing of magnitudes.
type ReportingService struct {
	transactionRepo portsrepo.TransactionReader
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func NewReportingService(transactionRepo portsrepo.TransactionReader) *ReportingService {
	return &ReportingService{transactionRepo: transactionRepo}
}

// periodBounds resolves the reporting params into an optional [from, to) pair.
// Mode month covers the calendar month of the reference date, mode year its
// calendar year, mode all the whole history.
func periodBounds(params dto.ReportingParams) (*time.Time, *time.Time, error) {
	ref := time.Now()
	if params.Date != "" {
		parsed, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, params.Date)
		}
		ref = parsed
	}

	switch params.Mode {
	case "", "month":
		from := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)
		return &from, &to, nil
	case "year":
		from := time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(1, 0, 0)
		return &from, &to, nil
	case "all":
		return nil, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown mode %q", apperrors.ErrValidation, params.Mode)
	}
}

func (s *ReportingService) fetchPeriod(ctx context.Context, userID string, params dto.ReportingParams) ([]domain.Transaction, error) {
	from, to, err := periodBounds(params)
	if err != nil {
		return nil, err
	}
	return s.transactionRepo.ListTransactionsByUser(ctx, userID, portsrepo.TransactionFilter{From: from, To: to})
}

// GetDashboard returns per-group totals, the expense and income category
// breakdowns sorted by amount descending, and the monthly income/expense trend
// for the selected period.
func (s *ReportingService) GetDashboard(ctx context.Context, userID string, params dto.ReportingParams) (*dto.DashboardResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.fetchPeriod(ctx, userID, params)
	if err != nil {
		logger.Error("Failed to fetch transactions for dashboard", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary := dto.DashboardSummary{
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		TotalSaveShare: decimal.Zero,
		TotalWindfall:  decimal.Zero,
	}
	expenseByCategory := map[string]decimal.Decimal{}
	incomeByCategory := map[string]decimal.Decimal{}
	trendByMonth := map[string]*dto.MonthlyTrend{}

	for i := range txns {
		t := &txns[i]
		magnitude := t.Amount.Abs()

		switch t.Group {
		case domain.GroupIncome:
			summary.TotalIncome = summary.TotalIncome.Add(magnitude)
		case domain.GroupExpense:
			summary.TotalExpense = summary.TotalExpense.Add(magnitude)
		case domain.GroupSaveShare:
			summary.TotalSaveShare = summary.TotalSaveShare.Add(magnitude)
		case domain.GroupWindfall:
			summary.TotalWindfall = summary.TotalWindfall.Add(magnitude)
		}

		switch t.Kind {
		case domain.KindExpense, domain.KindWindfall:
			expenseByCategory[t.Category] = expenseByCategory[t.Category].Add(magnitude)
		case domain.KindIncome:
			incomeByCategory[t.Category] = incomeByCategory[t.Category].Add(magnitude)
		}

		month := t.Date.Format("2006-01")
		entry, ok := trendByMonth[month]
		if !ok {
			entry = &dto.MonthlyTrend{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
			trendByMonth[month] = entry
		}
		if t.Kind == domain.KindIncome {
			entry.Income = entry.Income.Add(magnitude)
		} else {
			entry.Expense = entry.Expense.Add(magnitude)
		}
	}

	trend := make([]dto.MonthlyTrend, 0, len(trendByMonth))
	for _, entry := range trendByMonth {
		trend = append(trend, *entry)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })

	return &dto.DashboardResponse{
		Summary:           summary,
		ExpenseByCategory: categoryStats(expenseByCategory),
		IncomeByCategory:  categoryStats(incomeByCategory),
		MonthlyTrend:      trend,
	}, nil
}

// categoryStats turns per-category sums into a breakdown sorted by amount
// descending, with each slice's percentage of the total.
func categoryStats(sums map[string]decimal.Decimal) []dto.CategoryStat {
	total := decimal.Zero
	for _, amount := range sums {
		total = total.Add(amount)
	}

	stats := make([]dto.CategoryStat, 0, len(sums))
	for category, amount := range sums {
		percentage := 0.0
		if total.IsPositive() {
			percentage, _ = amount.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
		}
		stats = append(stats, dto.CategoryStat{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Amount.Equal(stats[j].Amount) {
			return stats[i].Category < stats[j].Category
		}
		return stats[i].Amount.GreaterThan(stats[j].Amount)
	})
	return stats
}

// GetIncomeSummary returns count/average/max/min statistics over income
// transactions for the selected period.
func (s *ReportingService) GetIncomeSummary(ctx context.Context, userID string, params dto.ReportingParams) (*dto.IncomeSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.fetchPeriod(ctx, userID, params)
	if err != nil {
		logger.Error("Failed to fetch transactions for income summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary := &dto.IncomeSummary{
		TotalIncome:   decimal.Zero,
		AverageIncome: decimal.Zero,
		MaxIncome:     decimal.Zero,
		MinIncome:     decimal.Zero,
	}

	for i := range txns {
		if txns[i].Kind != domain.KindIncome {
			continue
		}
		amount := txns[i].Amount.Abs()
		summary.TotalIncome = summary.TotalIncome.Add(amount)
		summary.TransactionCount++
		if summary.TransactionCount == 1 {
			summary.MaxIncome = amount
			summary.MinIncome = amount
			continue
		}
		if amount.GreaterThan(summary.MaxIncome) {
			summary.MaxIncome = amount
		}
		if amount.LessThan(summary.MinIncome) {
			summary.MinIncome = amount
		}
	}

	if summary.TransactionCount > 0 {
		summary.AverageIncome = summary.TotalIncome.Div(decimal.NewFromInt(int64(summary.TransactionCount))).Round(2)
	}

	return summary, nil
}
