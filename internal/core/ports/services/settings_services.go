package services

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/dto"
)

// SettingsSvcFacade manages per-user settings and the salary allocation table.
type SettingsSvcFacade interface {
	// GetSettings retrieves the user's settings, initializing defaults on first use.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// UpdateSettings replaces the user's settings after validating that every
	// allocation references one of the user's accounts.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
