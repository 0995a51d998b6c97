package dto

import (
	"time"

	"github.com/finbook/finbook/internal/core/domain"
)

// CreateCredentialRequest defines the data needed to store a credential note.
type CreateCredentialRequest struct {
	Type     string `json:"type" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Note     string `json:"note"`
}

// UpdateCredentialRequest defines the fields allowed for updating a credential note.
type UpdateCredentialRequest struct {
	Type     *string `json:"type"`
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Note     *string `json:"note"`
}

// CredentialResponse defines the data returned for a credential note.
type CredentialResponse struct {
	CredentialID string    `json:"credentialID"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Username     string    `json:"username,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Password     string    `json:"password,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCredentialResponse converts a domain.Credential to its response DTO.
func ToCredentialResponse(c *domain.Credential) CredentialResponse {
	return CredentialResponse{
		CredentialID: c.CredentialID,
		Type:         c.Type,
		Name:         c.Name,
		Username:     c.Username,
		Email:        c.Email,
		Phone:        c.Phone,
		Password:     c.Password,
		Note:         c.Note,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCredentialResponses converts a slice of domain credentials.
func ToCredentialResponses(credentials []domain.Credential) []CredentialResponse {
	res := make([]CredentialResponse, len(credentials))
	for i := range credentials {
		res[i] = ToCredentialResponse(&credentials[i])
	}
	return res
}
