package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

type credentialHandler struct {
	credentialService portssvc.CredentialSvcFacade
}

func registerCredentialRoutes(rg *gin.RouterGroup, credentialService portssvc.CredentialSvcFacade) {
	h := &credentialHandler{credentialService: credentialService}

	credentials := rg.Group("/credentials")
	{
		credentials.GET("", h.listCredentials)
		credentials.POST("", h.createCredential)
		credentials.PUT("/:id", h.updateCredential)
		credentials.DELETE("/:id", h.deleteCredential)
	}
}

// listCredentials godoc
// @Summary List the user's credential notes
// @Tags credentials
// @Produce  json
// @Success 200 {array} dto.CredentialResponse
// @Security BearerAuth
// @Router /credentials [get]
func (h *credentialHandler) listCredentials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	credentials, err := h.credentialService.ListCredentials(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list credentials")
		return
	}

	c.JSON(http.StatusOK, dto.ToCredentialResponses(credentials))
}

// createCredential godoc
// @Summary Store a credential note
// @Tags credentials
// @Accept  json
// @Produce  json
// @Param   credential body dto.CreateCredentialRequest true "Credential details"
// @Success 201 {object} dto.CredentialResponse
// @Security BearerAuth
// @Router /credentials [post]
func (h *credentialHandler) createCredential(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCredential", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	credential, err := h.credentialService.CreateCredential(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create credential")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCredentialResponse(credential))
}

// updateCredential godoc
// @Summary Update a credential note
// @Tags credentials
// @Accept  json
// @Produce  json
// @Param   id path string true "Credential ID"
// @Param   credential body dto.UpdateCredentialRequest true "Fields to update"
// @Success 200 {object} dto.CredentialResponse
// @Security BearerAuth
// @Router /credentials/{id} [put]
func (h *credentialHandler) updateCredential(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCredential", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	credential, err := h.credentialService.UpdateCredential(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update credential")
		return
	}

	c.JSON(http.StatusOK, dto.ToCredentialResponse(credential))
}

// deleteCredential godoc
// @Summary Delete a credential note
// @Tags credentials
// @Param   id path string true "Credential ID"
// @Success 204 "No content"
// @Security BearerAuth
// @Router /credentials/{id} [delete]
func (h *credentialHandler) deleteCredential(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.credentialService.DeleteCredential(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete credential")
		return
	}

	c.Status(http.StatusNoContent)
}
