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

// LoanService manages loans (money lent out by the user).
type LoanService struct {
	loanRepo portsrepo.LoanRepository
}

var _ portssvc.LoanSvcFacade = (*LoanService)(nil)

func NewLoanService(loanRepo portsrepo.LoanRepository) *LoanService {
	return &LoanService{loanRepo: loanRepo}
}

func (s *LoanService) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loans, err := s.loanRepo.ListLoansByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list loans", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

func (s *LoanService) CreateLoan(ctx context.Context, userID string, req dto.CreateLoanRequest) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.LoanPending
	}

	now := time.Now()
	loan := domain.Loan{
		LoanID:       uuid.NewString(),
		UserID:       userID,
		BorrowerName: req.BorrowerName,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		Note:         req.Note,
		Status:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		logger.Error("Failed to save loan", slog.String("loan_id", loan.LoanID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	logger.Info("Loan created", slog.String("loan_id", loan.LoanID))
	return &loan, nil
}

func (s *LoanService) UpdateLoan(ctx context.Context, userID string, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if loan.UserID != userID {
		return nil, fmt.Errorf("%w: loan %s", apperrors.ErrForbidden, loanID)
	}

	if req.BorrowerName != nil {
		loan.BorrowerName = *req.BorrowerName
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		loan.Amount = *req.Amount
	}
	if req.DueDate != nil {
		loan.DueDate = *req.DueDate
	}
	if req.Note != nil {
		loan.Note = *req.Note
	}
	if req.Status != nil {
		loan.Status = *req.Status
	}
	loan.LastUpdatedAt = time.Now()
	loan.LastUpdatedBy = userID

	if err := s.loanRepo.UpdateLoan(ctx, *loan); err != nil {
		logger.Error("Failed to update loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}

	return loan, nil
}

func (s *LoanService) DeleteLoan(ctx context.Context, userID string, loanID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return err
	}
	if loan.UserID != userID {
		return fmt.Errorf("%w: loan %s", apperrors.ErrForbidden, loanID)
	}

	if err := s.loanRepo.DeleteLoan(ctx, loanID); err != nil {
		logger.Error("Failed to delete loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Loan deleted", slog.String("loan_id", loanID))
	return nil
}
