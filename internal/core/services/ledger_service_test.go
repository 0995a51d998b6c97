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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactionsByAccount(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountBalance(ctx context.Context, accountID string, newAmount decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountID, newAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// decEq matches a decimal argument by value, independent of internal scale.
func decEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         *services.LedgerService
	userID          string
	cashAccount     domain.Account
	bankAccount     domain.Account
	savingAccount   domain.Account
	settings        domain.Settings
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockAccountRepo)

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   suite.userID,
		Name:      "Cash",
		Kind:      domain.AccountCash,
		Amount:    decimal.NewFromInt(1000),
	}
	suite.bankAccount = domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   suite.userID,
		Name:      "Bank",
		Kind:      domain.AccountBank,
		Amount:    decimal.NewFromInt(5000),
	}
	suite.savingAccount = domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   suite.userID,
		Name:      "Saving",
		Kind:      domain.AccountSaving,
		Amount:    decimal.NewFromInt(200),
	}
	suite.settings = domain.Settings{
		UserID:           suite.userID,
		DefaultAccountID: suite.cashAccount.AccountID,
		Currency:         "VND",
		Allocations: []domain.Allocation{
			{AccountID: suite.bankAccount.AccountID, Amount: decimal.NewFromInt(600)},
			{AccountID: suite.savingAccount.AccountID, Amount: decimal.NewFromInt(400)},
		},
	}
}

// expectDelta wires the read-then-write pair for one balance adjustment.
func (suite *LedgerServiceTestSuite) expectDelta(account domain.Account, delta int64) {
	current := account
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(&current, nil).Once()
	updated := account
	updated.Amount = account.Amount.Add(decimal.NewFromInt(delta))
	suite.mockAccountRepo.On("SetAccountBalance", mock.Anything, account.AccountID, decEq(updated.Amount)).Return(&updated, nil).Once()
}

// --- CreateTransaction ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ExpenseDebitsAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(200),
		Kind:      domain.KindExpense,
		Category:  "Food",
		AccountID: suite.cashAccount.AccountID,
		Group:     domain.GroupExpense,
	}

	suite.expectDelta(suite.cashAccount, -200)
	suite.mockTxnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(-200)), "expense amount should be stored negative, got %s", txn.Amount)
	suite.Equal(suite.userID, txn.CreatedBy)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_IncomeCreditsAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(300),
		Kind:      domain.KindIncome,
		Category:  "Bonus",
		AccountID: suite.bankAccount.AccountID,
		Group:     domain.GroupIncome,
	}

	suite.expectDelta(suite.bankAccount, 300)
	suite.mockTxnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(300)))

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_WindfallStoredNegative() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:      time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(50),
		Kind:      domain.KindWindfall,
		Category:  "Gift given",
		AccountID: suite.cashAccount.AccountID,
		Group:     domain.GroupWindfall,
	}

	suite.expectDelta(suite.cashAccount, -50)
	suite.mockTxnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.IsNegative(), "windfall behaves like expense in balance math")

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_SalaryDistributesAllocations() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(1000),
		Kind:     domain.KindIncome,
		Category: domain.CategorySalary,
		Group:    domain.GroupIncome,
	}

	// Each allocation account is credited its slice; the nominal account is
	// never touched.
	suite.expectDelta(suite.bankAccount, 600)
	suite.expectDelta(suite.savingAccount, 400)
	suite.mockTxnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(1000)))
	suite.True(txn.IsSalaryIncome())

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, suite.cashAccount.AccountID)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_SalaryAllocationShortfall() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(1200), // allocations only cover 1000
		Kind:     domain.KindIncome,
		Category: domain.CategorySalary,
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrAllocationMismatch)
	suite.Contains(err.Error(), "less than")

	// No balance writes and no saved record before the mismatch is detected.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SetAccountBalance", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_SalaryAllocationExcess() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(900), // allocations add up to 1000
		Kind:     domain.KindIncome,
		Category: domain.CategorySalary,
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrAllocationMismatch)
	suite.Contains(err.Error(), "exceeds")

	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SetAccountBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:      time.Now(),
		Amount:    decimal.Zero,
		Kind:      domain.KindExpense,
		Category:  "Food",
		AccountID: suite.cashAccount.AccountID,
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_MissingAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:     time.Now(),
		Amount:   decimal.NewFromInt(10),
		Kind:     domain.KindExpense,
		Category: "Food",
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, suite.settings, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateTransaction ---

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_MovesEffectBetweenAccounts() {
	ctx := context.Background()
	original := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Amount:        decimal.NewFromInt(-200),
		Kind:          domain.KindExpense,
		Category:      "Food",
		AccountID:     suite.cashAccount.AccountID,
	}
	req := dto.UpdateTransactionRequest{
		Date:      time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(250),
		Kind:      domain.KindExpense,
		Category:  "Food",
		AccountID: suite.bankAccount.AccountID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, original.TransactionID).Return(&original, nil).Once()
	// Reversal adds 200 back to cash, reapply subtracts 250 from the bank.
	suite.expectDelta(suite.cashAccount, 200)
	suite.expectDelta(suite.bankAccount, -250)
	suite.mockTxnRepo.On("UpdateTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, suite.settings, original.TransactionID, req)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(-250)))
	suite.Equal(suite.bankAccount.AccountID, updated.AccountID)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_SameAccountReadsTwice() {
	ctx := context.Background()
	original := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Amount:        decimal.NewFromInt(-200),
		Kind:          domain.KindExpense,
		Category:      "Food",
		AccountID:     suite.cashAccount.AccountID,
	}
	req := dto.UpdateTransactionRequest{
		Date:      time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(300),
		Kind:      domain.KindExpense,
		Category:  "Food",
		AccountID: suite.cashAccount.AccountID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, original.TransactionID).Return(&original, nil).Once()

	// The edit runs as two independent read-then-write pairs even on the same
	// account: read 1000, write 1200, read 1200, write 900.
	first := suite.cashAccount
	afterReversal := suite.cashAccount
	afterReversal.Amount = decimal.NewFromInt(1200)
	final := suite.cashAccount
	final.Amount = decimal.NewFromInt(900)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&first, nil).Once()
	suite.mockAccountRepo.On("SetAccountBalance", mock.Anything, suite.cashAccount.AccountID, decEq(decimal.NewFromInt(1200))).Return(&afterReversal, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&afterReversal, nil).Once()
	suite.mockAccountRepo.On("SetAccountBalance", mock.Anything, suite.cashAccount.AccountID, decEq(decimal.NewFromInt(900))).Return(&final, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, suite.settings, original.TransactionID, req)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(-300)))

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_Forbidden() {
	ctx := context.Background()
	original := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        uuid.NewString(), // someone else's record
		Amount:        decimal.NewFromInt(-200),
		Kind:          domain.KindExpense,
		AccountID:     suite.cashAccount.AccountID,
	}
	req := dto.UpdateTransactionRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(100),
		Kind:      domain.KindExpense,
		Category:  "Food",
		AccountID: suite.cashAccount.AccountID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, original.TransactionID).Return(&original, nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, suite.settings, original.TransactionID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SetAccountBalance", mock.Anything, mock.Anything, mock.Anything)
}

// --- DeleteTransaction ---

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_ReversesBalanceEffect() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Amount:        decimal.NewFromInt(-200),
		Kind:          domain.KindExpense,
		Category:      "Food",
		AccountID:     suite.cashAccount.AccountID,
	}

	// Cash was 1000 after the expense; deleting restores 1200... here the
	// account is read fresh, so the reversal sets current+200.
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()
	suite.expectDelta(suite.cashAccount, 200)
	suite.mockTxnRepo.On("DeleteTransaction", mock.Anything, txn.TransactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, suite.settings, txn.TransactionID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_SalaryReversesAllocations() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Amount:        decimal.NewFromInt(1000),
		Kind:          domain.KindIncome,
		Category:      domain.CategorySalary,
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()
	suite.expectDelta(suite.bankAccount, -600)
	suite.expectDelta(suite.savingAccount, -400)
	suite.mockTxnRepo.On("DeleteTransaction", mock.Anything, txn.TransactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, suite.settings, txn.TransactionID)

	suite.Require().NoError(err)
	// Fully allocated: the default account never sees a remainder write.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, suite.cashAccount.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_SalaryRemainderHitsDefaultAccount() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Amount:        decimal.NewFromInt(1500), // 500 more than today's allocation table covers
		Kind:          domain.KindIncome,
		Category:      domain.CategorySalary,
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()
	suite.expectDelta(suite.bankAccount, -600)
	suite.expectDelta(suite.savingAccount, -400)
	suite.expectDelta(suite.cashAccount, -500)
	suite.mockTxnRepo.On("DeleteTransaction", mock.Anything, txn.TransactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, suite.settings, txn.TransactionID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_Forbidden() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        uuid.NewString(),
		Amount:        decimal.NewFromInt(-50),
		Kind:          domain.KindExpense,
		AccountID:     suite.cashAccount.AccountID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, suite.settings, txn.TransactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

// --- Listing ---

func (suite *LedgerServiceTestSuite) TestListTransactions_ParsesFilter() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{
		Category: "Food",
		Kind:     "EXPENSE",
		From:     "2025-03-01",
		To:       "2025-04-01",
	}

	expectedFrom := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expectedTo := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.mockTxnRepo.On("ListTransactionsByUser", mock.Anything, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Category == "Food" &&
			f.Kind == domain.KindExpense &&
			f.From != nil && f.From.Equal(expectedFrom) &&
			f.To != nil && f.To.Equal(expectedTo)
	})).Return([]domain.Transaction{}, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_ReadIsIdempotent() {
	ctx := context.Background()
	stored := []domain.Transaction{
		txnOn(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), -200, domain.KindExpense, domain.GroupExpense, "Food"),
		txnOn(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 1000, domain.KindIncome, domain.GroupIncome, domain.CategorySalary),
	}
	suite.mockTxnRepo.On("ListTransactionsByUser", mock.Anything, suite.userID, mock.Anything).
		Return(stored, nil).Twice()

	first, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{})
	suite.Require().NoError(err)
	second, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{})
	suite.Require().NoError(err)

	suite.Require().Len(first.Transactions, 2)
	suite.Equal(first.Transactions, second.Transactions)
	for i := range stored {
		suite.Equal(stored[i].TransactionID, second.Transactions[i].TransactionID)
	}
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_RejectsUnknownKind() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Kind: "TRANSFER"}

	resp, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetTransactionByID_Forbidden() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        uuid.NewString(),
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()

	got, err := suite.service.GetTransactionByID(ctx, suite.userID, txn.TransactionID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
