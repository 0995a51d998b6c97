package services

import (
	"context"

	"github.com/finbook/finbook/internal/core/domain"
	"github.com/finbook/finbook/internal/dto"
)

// UserSvcFacade manages user records.
type UserSvcFacade interface {
	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// RegisterUser creates a user with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// FindOrCreateOAuthUser returns the user with the given email, creating a
	// passwordless record for first-time OAuth sign-ins.
	FindOrCreateOAuthUser(ctx context.Context, email string, name string) (*domain.User, error)
}

// AuthSvcFacade authenticates users and mints access tokens.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed JWT with the user.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// GetGoogleLoginURL returns the Google consent page URL for the state.
	GetGoogleLoginURL(state string) string

	// ExchangeGoogleCode exchanges a Google authorization code for an
	// application JWT, creating the user on first sign-in.
	ExchangeGoogleCode(ctx context.Context, code string) (*dto.AuthResponse, error)
}
