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
)

// AccountService manages account records. It never applies transaction deltas;
// balance movement belongs to the ledger service.
type AccountService struct {
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionReader) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	account := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   userID,
		Name:      req.Name,
		Kind:      req.Kind,
		Amount:    req.InitialAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if account.OwnerID != userID {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrForbidden, accountID)
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, userID)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Kind != nil {
		account.Kind = *req.Kind
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeleteAccount removes an account. The delete is refused while transactions
// still reference the account; the records must be deleted or moved first.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetAccountByID(ctx, userID, accountID); err != nil {
		return err
	}

	count, err := s.transactionRepo.CountTransactionsByAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to count transactions for account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: account %s still has %d transactions", apperrors.ErrConflict, accountID, count)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
