package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbook/finbook/internal/apperrors"
	"github.com/finbook/finbook/internal/core/domain"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService records transactions and keeps account balances consistent with
// them. Balance writes are unconditional overwrites computed from a just-read
// balance; the steps of one operation are independent store calls with no
// rollback, so a mid-operation failure leaves earlier writes applied.
type LedgerService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// signedAmount derives the stored sign from the kind: expense and windfall are
// negative, income positive. The magnitude comes in unsigned from the request.
func signedAmount(amount decimal.Decimal, kind domain.TransactionKind) decimal.Decimal {
	if kind == domain.KindExpense || kind == domain.KindWindfall {
		return amount.Neg()
	}
	return amount
}

// applyDelta reads an account's current balance and overwrites it with
// current+delta. This is a read-then-write pair, not an atomic increment.
func (s *LedgerService) applyDelta(ctx context.Context, accountID string, delta decimal.Decimal) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to read account %s: %w", accountID, err)
	}
	if _, err := s.accountRepo.SetAccountBalance(ctx, accountID, account.Amount.Add(delta)); err != nil {
		return fmt.Errorf("failed to write balance of account %s: %w", accountID, err)
	}
	return nil
}

// CreateTransaction records a transaction and applies its balance effect. A
// Salary income is distributed across the settings allocations instead of the
// nominal account, and is rejected without any mutation when the allocation
// total differs from the amount.
func (s *LedgerService) CreateTransaction(ctx context.Context, userID string, settings domain.Settings, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Date:          req.Date,
		Description:   req.Description,
		Amount:        signedAmount(req.Amount, req.Kind),
		Kind:          req.Kind,
		Category:      req.Category,
		AccountID:     req.AccountID,
		Group:         req.Group,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if txn.IsSalaryIncome() {
		total := settings.AllocationTotal()
		if total.LessThan(req.Amount) {
			return nil, fmt.Errorf("%w: allocated sum %s is less than the salary amount %s", apperrors.ErrAllocationMismatch, total, req.Amount)
		}
		if total.GreaterThan(req.Amount) {
			return nil, fmt.Errorf("%w: allocated sum %s exceeds the salary amount %s", apperrors.ErrAllocationMismatch, total, req.Amount)
		}
		for _, alloc := range settings.Allocations {
			if err := s.applyDelta(ctx, alloc.AccountID, alloc.Amount); err != nil {
				logger.Error("Salary allocation credit failed", slog.String("account_id", alloc.AccountID), slog.String("error", err.Error()))
				return nil, err
			}
		}
	} else {
		if req.AccountID == "" {
			return nil, fmt.Errorf("%w: accountID is required", apperrors.ErrValidation)
		}
		if err := s.applyDelta(ctx, req.AccountID, txn.Amount); err != nil {
			logger.Error("Balance apply failed", slog.String("account_id", req.AccountID), slog.String("error", err.Error()))
			return nil, err
		}
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction after balance apply", slog.String("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

// UpdateTransaction reverses the original balance effect on the original
// account and applies the new effect on the (possibly different) target
// account, as two independent read-then-write pairs, then replaces the record.
// Salary incomes are treated like any other transaction here: the edit path
// works through the single AccountID and never re-walks the allocation table.
func (s *LedgerService) UpdateTransaction(ctx context.Context, userID string, settings domain.Settings, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	original, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if original.UserID != userID {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrForbidden, transactionID)
	}

	// Reversal on the original account: the stored amount is signed, so the
	// reversal delta is its negation.
	if err := s.applyDelta(ctx, original.AccountID, original.Amount.Neg()); err != nil {
		logger.Error("Balance reversal failed", slog.String("account_id", original.AccountID), slog.String("error", err.Error()))
		return nil, err
	}

	newAmount := signedAmount(req.Amount, req.Kind)
	if err := s.applyDelta(ctx, req.AccountID, newAmount); err != nil {
		logger.Error("Balance reapply failed", slog.String("account_id", req.AccountID), slog.String("error", err.Error()))
		return nil, err
	}

	updated := *original
	updated.Date = req.Date
	updated.Description = req.Description
	updated.Amount = newAmount
	updated.Kind = req.Kind
	updated.Category = req.Category
	updated.AccountID = req.AccountID
	updated.Group = req.Group
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, updated); err != nil {
		logger.Error("Failed to update transaction after balance writes", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

// DeleteTransaction reverses the transaction's balance effect and removes the
// record. The Salary path walks the *current* allocation table, subtracting
// each entry, and subtracts any positive unallocated remainder from the default
// account; the allocations in effect at creation time are not recorded, so an
// allocation table edited since creation reverses differently than it applied.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID string, settings domain.Settings, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.UserID != userID {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrForbidden, transactionID)
	}

	if txn.IsSalaryIncome() {
		remaining := txn.Amount
		for _, alloc := range settings.Allocations {
			if err := s.applyDelta(ctx, alloc.AccountID, alloc.Amount.Neg()); err != nil {
				logger.Error("Salary allocation reversal failed", slog.String("account_id", alloc.AccountID), slog.String("error", err.Error()))
				return err
			}
			remaining = remaining.Sub(alloc.Amount)
		}
		if remaining.GreaterThan(decimal.Zero) {
			if err := s.applyDelta(ctx, settings.DefaultAccountID, remaining.Neg()); err != nil {
				logger.Error("Default account remainder reversal failed", slog.String("account_id", settings.DefaultAccountID), slog.String("error", err.Error()))
				return err
			}
		}
	} else {
		if err := s.applyDelta(ctx, txn.AccountID, txn.Amount.Neg()); err != nil {
			logger.Error("Balance reversal failed", slog.String("account_id", txn.AccountID), slog.String("error", err.Error()))
			return err
		}
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Failed to delete transaction after balance reversal", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *LedgerService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if txn.UserID != userID {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrForbidden, transactionID)
	}
	return txn, nil
}

// ListTransactions returns the user's transactions most recent first,
// optionally narrowed by category, kind, date range and description search.
func (s *LedgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter, err := buildTransactionFilter(params)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByUser(ctx, userID, filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)}, nil
}

func buildTransactionFilter(params dto.ListTransactionsParams) (portsrepo.TransactionFilter, error) {
	filter := portsrepo.TransactionFilter{
		Category: params.Category,
		Search:   params.Search,
	}
	if params.Kind != "" {
		kind := domain.TransactionKind(params.Kind)
		switch kind {
		case domain.KindIncome, domain.KindExpense, domain.KindWindfall:
			filter.Kind = kind
		default:
			return filter, fmt.Errorf("%w: unknown kind %q", apperrors.ErrValidation, params.Kind)
		}
	}
	if params.From != "" {
		from, err := time.Parse("2006-01-02", params.From)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, params.From)
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.Parse("2006-01-02", params.To)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, params.To)
		}
		filter.To = &to
	}
	return filter, nil
}
