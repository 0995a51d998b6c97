package repositories

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
)

// SettingsRepository persists per-user settings, including the ordered salary
// allocation table.
type SettingsRepository interface {
	// FindSettingsByUser retrieves a user's settings with allocations in their
	// configured order.
	FindSettingsByUser(ctx context.Context, userID string) (*domain.Settings, error)

	// SaveSettings persists settings for a user who has none yet.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// UpdateSettings replaces a user's settings, including the allocation table.
	UpdateSettings(ctx context.Context, settings domain.Settings) error
}
