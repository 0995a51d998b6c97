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

// CredentialService manages personal credential notes.
type CredentialService struct {
	credentialRepo portsrepo.CredentialRepository
}

var _ portssvc.CredentialSvcFacade = (*CredentialService)(nil)

func NewCredentialService(credentialRepo portsrepo.CredentialRepository) *CredentialService {
	return &CredentialService{credentialRepo: credentialRepo}
}

func (s *CredentialService) ListCredentials(ctx context.Context, userID string) ([]domain.Credential, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	credentials, err := s.credentialRepo.ListCredentialsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list credentials", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	if credentials == nil {
		return []domain.Credential{}, nil
	}
	return credentials, nil
}

func (s *CredentialService) CreateCredential(ctx context.Context, userID string, req dto.CreateCredentialRequest) (*domain.Credential, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	credential := domain.Credential{
		CredentialID: uuid.NewString(),
		UserID:       userID,
		Type:         req.Type,
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		Note:         req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.credentialRepo.SaveCredential(ctx, credential); err != nil {
		logger.Error("Failed to save credential", slog.String("credential_id", credential.CredentialID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save credential: %w", err)
	}

	logger.Info("Credential created", slog.String("credential_id", credential.CredentialID))
	return &credential, nil
}

func (s *CredentialService) UpdateCredential(ctx context.Context, userID string, credentialID string, req dto.UpdateCredentialRequest) (*domain.Credential, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	credential, err := s.credentialRepo.FindCredentialByID(ctx, credentialID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find credential", slog.String("credential_id", credentialID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if credential.UserID != userID {
		return nil, fmt.Errorf("%w: credential %s", apperrors.ErrForbidden, credentialID)
	}

	if req.Type != nil {
		credential.Type = *req.Type
	}
	if req.Name != nil {
		credential.Name = *req.Name
	}
	if req.Username != nil {
		credential.Username = *req.Username
	}
	if req.Email != nil {
		credential.Email = *req.Email
	}
	if req.Phone != nil {
		credential.Phone = *req.Phone
	}
	if req.Password != nil {
		credential.Password = *req.Password
	}
	if req.Note != nil {
		credential.Note = *req.Note
	}
	credential.LastUpdatedAt = time.Now()
	credential.LastUpdatedBy = userID

	if err := s.credentialRepo.UpdateCredential(ctx, *credential); err != nil {
		logger.Error("Failed to update credential", slog.String("credential_id", credentialID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update credential: %w", err)
	}

	return credential, nil
}

func (s *CredentialService) DeleteCredential(ctx context.Context, userID string, credentialID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	credential, err := s.credentialRepo.FindCredentialByID(ctx, credentialID)
	if err != nil {
		return err
	}
	if credential.UserID != userID {
		return fmt.Errorf("%w: credential %s", apperrors.ErrForbidden, credentialID)
	}

	if err := s.credentialRepo.DeleteCredential(ctx, credentialID); err != nil {
		logger.Error("Failed to delete credential", slog.String("credential_id", credentialID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Credential deleted", slog.String("credential_id", credentialID))
	return nil
}
