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
	"github.com/shopspring/decimal"
)

// defaultCurrency is used when settings are initialized on first read.
const defaultCurrency = "VND"

// SettingsService manages per-user settings and the salary allocation table.
type SettingsService struct {
	settingsRepo portsrepo.SettingsRepository
	accountRepo  portsrepo.AccountReader
}

var _ portssvc.SettingsSvcFacade = (*SettingsService)(nil)

func NewSettingsService(settingsRepo portsrepo.SettingsRepository, accountRepo portsrepo.AccountReader) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
	}
}

// GetSettings retrieves the user's settings, creating a default row on first
// use (VND currency, no default account, empty allocation table).
func (s *SettingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	settings, err := s.settingsRepo.FindSettingsByUser(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to find settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}

	now := time.Now()
	initial := domain.Settings{
		UserID:      userID,
		Currency:    defaultCurrency,
		Allocations: []domain.Allocation{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.settingsRepo.SaveSettings(ctx, initial); err != nil {
		logger.Error("Failed to initialize settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	logger.Info("Settings initialized with defaults")
	return &initial, nil
}

// UpdateSettings replaces the user's settings wholesale. Every allocation row
// must reference one of the user's accounts and carry a non-negative amount;
// the submitted order is preserved.
func (s *SettingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	current, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, userID)
	if err != nil {
		logger.Error("Failed to list accounts for settings validation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	owned := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		owned[a.AccountID] = struct{}{}
	}

	if _, ok := owned[req.DefaultAccountID]; !ok {
		return nil, fmt.Errorf("%w: default account %s not found", apperrors.ErrValidation, req.DefaultAccountID)
	}

	allocations := make([]domain.Allocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		if _, ok := owned[a.AccountID]; !ok {
			return nil, fmt.Errorf("%w: allocation account %s not found", apperrors.ErrValidation, a.AccountID)
		}
		if a.Amount.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: allocation amount must be non-negative", apperrors.ErrValidation)
		}
		allocations = append(allocations, domain.Allocation{AccountID: a.AccountID, Amount: a.Amount})
	}

	updated := *current
	updated.DefaultAccountID = req.DefaultAccountID
	updated.Currency = req.Currency
	updated.Allocations = allocations
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.settingsRepo.UpdateSettings(ctx, updated); err != nil {
		logger.Error("Failed to update settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	logger.Info("Settings updated", slog.Int("allocation_count", len(allocations)))
	return &updated, nil
}
