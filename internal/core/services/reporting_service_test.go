package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	"github.com/finbook/finbook/internal/core/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     *services.ReportingService
	userID      string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func txnOn(date time.Time, amount int64, kind domain.TransactionKind, group domain.TransactionGroup, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Amount:        decimal.NewFromInt(amount),
		Kind:          kind,
		Group:         group,
		Category:      category,
	}
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_MonthBounds() {
	ctx := context.Background()
	params := dto.ReportingParams{Mode: "month", Date: "2025-03-15"}

	expectedFrom := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expectedTo := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.mockTxnRepo.On("ListTransactionsByUser", mock.Anything, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.From != nil && f.From.Equal(expectedFrom) && f.To != nil && f.To.Equal(expectedTo)
	})).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetDashboard(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_AllModeHasNoBounds() {
	ctx := context.Background()
	params := dto.ReportingParams{Mode: "all"}

	suite.mockTxnRepo.On("ListTransactionsByUser", mock.Anything, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.From == nil && f.To == nil
	})).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetDashboard(ctx, suite.userID, params)

	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_RejectsUnknownMode() {
	ctx := context.Background()

	resp, err := suite.service.GetDashboard(ctx, suite.userID, dto.ReportingParams{Mode: "quarter"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_Aggregates() {
	ctx := context.Background()
	march := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txnOn(march, 1000, domain.KindIncome, domain.GroupIncome, "Salary"),
		txnOn(march, -300, domain.KindExpense, domain.GroupExpense, "Food"),
		txnOn(march, -200, domain.KindExpense, domain.GroupExpense, "Transport"),
		txnOn(march, -100, domain.KindExpense, domain.GroupSaveShare, "Charity"),
		txnOn(april, -50, domain.KindWindfall, domain.GroupWindfall, "Gift given"),
	}

	suite.mockTxnRepo.On("ListTransactionsByUser", mock.Anything, suite.userID, mock.Anything).Return(txns, nil).Once()

	resp, err := suite.service.GetDashboard(ctx, suite.userID, dto.ReportingParams{Mode: "all"})

	suite.Require().NoError(err)

	// Group totals are magnitudes.
	suite.True(resp.Summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
	suite.True(resp.Summary.TotalExpense.Equal(decimal.NewFromInt(500)))
	suite.True(resp.Summary.TotalSaveShare.Equal(decimal.NewFromInt(100)))
	suite.True(resp.Summary.TotalWindfall.Equal(decimal.NewFromInt(50)))

	// Expense breakdown covers expense and windfall kinds, largest first.
	suite.Require().Len(resp.ExpenseByCategory, 4)
	suite.Equal("Food", resp.ExpenseByCategory[0].Category)
	suite.InDelta(46.15, resp.ExpenseByCategory[0].Percentage, 0.01)
	suite.Equal("Transport", resp.ExpenseByCategory[1].Category)

	suite.Require().Len(resp.IncomeByCategory, 1)
	suite.Equal("Salary", resp.IncomeByCategory[0].Category)
	suite.InDelta(100.0, resp.IncomeByCategory[0].Percentage, 0.01)

	// Trend is one entry per month, oldest first.
	suite.Require().Len(resp.MonthlyTrend, 2)
	suite.Equal("2025-03", resp.MonthlyTrend[0].Month)
	suite.True(resp.MonthlyTrend[0].Income.Equal(decimal.NewFromInt(1000)))
	suite.True(resp.MonthlyTrend[0].Expense.Equal(decimal.NewFromInt(600)))
	suite.Equal("2025-04", resp.MonthlyTrend[1].Month)
	suite.True(resp.MonthlyTrend[1].Expense.Equal(decimal.NewFromInt(50)))
}

func (suite *ReportingServiceTestSuite) TestGetIncomeSummary_Stats() {
	ctx := context.Background()
	march := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txnOn(march, 1000, domain.KindIncome, domain.GroupIncome, "Salary"),
		txnOn(march, 250, domain.KindIncome, domain.GroupIncome, "Bonus"),
		txnOn(march, -300, domain.KindExpense, domain.GroupExpense, "Food"),
	}

	suite.mockTxnRepo.On("ListTransactionsByUser", mock.Anything, suite.userID, mock.Anything).Return(txns, nil).Once()

	summary, err := suite.service.GetIncomeSummary(ctx, suite.userID, dto.ReportingParams{Mode: "all"})

	suite.Require().NoError(err)
	suite.Equal(2, summary.TransactionCount)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(1250)))
	suite.True(summary.AverageIncome.Equal(decimal.NewFromInt(625)))
	suite.True(summary.MaxIncome.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.MinIncome.Equal(decimal.NewFromInt(250)))
}

func (suite *ReportingServiceTestSuite) TestGetIncomeSummary_Empty() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactionsByUser", mock.Anything, suite.userID, mock.Anything).Return([]domain.Transaction{}, nil).Once()

	summary, err := suite.service.GetIncomeSummary(ctx, suite.userID, dto.ReportingParams{Mode: "all"})

	suite.Require().NoError(err)
	suite.Equal(0, summary.TransactionCount)
	suite.True(summary.TotalIncome.IsZero())
	suite.True(summary.AverageIncome.IsZero())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
