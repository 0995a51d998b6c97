package repositories

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
)

// UserRepository persists user records.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
}
