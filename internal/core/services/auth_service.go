package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finbook/finbook/internal/apperrors"
	portsrepo "github.com/finbook/finbook/internal/core/ports/repositories"
	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/finbook/finbook/internal/platform/config"
	"github.com/finbook/finbook/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// AuthService authenticates users and mints access tokens. Google sign-in is
// handled by exchanging the authorization code server-side and looking up the
// verified profile.
type AuthService struct {
	cfg          *config.Config
	userRepo     portsrepo.UserRepository
	userService  portssvc.UserSvcFacade
	oauth2Config *oauth2.Config
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, userService portssvc.UserSvcFacade) *AuthService {
	return &AuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		userService: userService,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Login verifies the email/password pair and returns a signed JWT with the
// user. Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate JWT", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *AuthService) GetGoogleLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeGoogleCode exchanges a Google authorization code for an application
// JWT, creating the user on first sign-in.
func (s *AuthService) ExchangeGoogleCode(ctx context.Context, code string) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		logger.Warn("Failed to exchange oauth code", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: failed to exchange oauth code", apperrors.ErrUnauthorized)
	}

	userInfo, err := s.fetchGoogleUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		return nil, err
	}
	if userInfo.Email == "" {
		return nil, fmt.Errorf("%w: google profile has no email", apperrors.ErrUnauthorized)
	}

	user, err := s.userService.FindOrCreateOAuthUser(ctx, userInfo.Email, userInfo.Name)
	if err != nil {
		return nil, err
	}

	jwtToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate JWT", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in via Google", slog.String("user_id", user.UserID))
	return &dto.AuthResponse{Token: jwtToken, User: dto.ToUserResponse(user)}, nil
}

// fetchGoogleUserInfo retrieves the verified profile behind the token from the
// Google userinfo endpoint.
func (s *AuthService) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*goauth2.Userinfo, error) {
	svc, err := goauth2.NewService(ctx, option.WithTokenSource(s.oauth2Config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth2 service: %w", err)
	}
	userInfo, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	return userInfo, nil
}
