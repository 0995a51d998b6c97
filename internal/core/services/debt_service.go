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

// DebtService manages debts. Debts are bookkeeping records; they never touch
// account balances.
type DebtService struct {
	debtRepo portsrepo.DebtRepository
}

var _ portssvc.DebtSvcFacade = (*DebtService)(nil)

func NewDebtService(debtRepo portsrepo.DebtRepository) *DebtService {
	return &DebtService{debtRepo: debtRepo}
}

func (s *DebtService) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	debts, err := s.debtRepo.ListDebtsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list debts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	if debts == nil {
		return []domain.Debt{}, nil
	}
	return debts, nil
}

func (s *DebtService) CreateDebt(ctx context.Context, userID string, req dto.CreateDebtRequest) (*domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.DebtPending
	}

	now := time.Now()
	debt := domain.Debt{
		DebtID:     uuid.NewString(),
		UserID:     userID,
		LenderName: req.LenderName,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
		Note:       req.Note,
		Status:     status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		logger.Error("Failed to save debt", slog.String("debt_id", debt.DebtID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}

	logger.Info("Debt created", slog.String("debt_id", debt.DebtID))
	return &debt, nil
}

func (s *DebtService) UpdateDebt(ctx context.Context, userID string, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find debt", slog.String("debt_id", debtID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if debt.UserID != userID {
		return nil, fmt.Errorf("%w: debt %s", apperrors.ErrForbidden, debtID)
	}

	if req.LenderName != nil {
		debt.LenderName = *req.LenderName
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		debt.Amount = *req.Amount
	}
	if req.DueDate != nil {
		debt.DueDate = *req.DueDate
	}
	if req.Note != nil {
		debt.Note = *req.Note
	}
	if req.Status != nil {
		debt.Status = *req.Status
	}
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		logger.Error("Failed to update debt", slog.String("debt_id", debtID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	return debt, nil
}

func (s *DebtService) DeleteDebt(ctx context.Context, userID string, debtID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return err
	}
	if debt.UserID != userID {
		return fmt.Errorf("%w: debt %s", apperrors.ErrForbidden, debtID)
	}

	if err := s.debtRepo.DeleteDebt(ctx, debtID); err != nil {
		logger.Error("Failed to delete debt", slog.String("debt_id", debtID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Debt deleted", slog.String("debt_id", debtID))
	return nil
}
