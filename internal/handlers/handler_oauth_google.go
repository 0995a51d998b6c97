package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type googleOAuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerGoogleOAuthRoutes registers the public Google sign-in routes.
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{authService: services.Auth}

	google := r.Group("/auth/google")
	{
		google.GET("/login-url", h.loginURL)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// exchangeCodeRequest is the JSON body for the exchange-code endpoint.
type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// loginURL godoc
// @Summary Get the Google consent page URL
// @Description Returns the URL the frontend should redirect to for Google sign-in
// @Tags oauth
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /auth/google/login-url [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	state := uuid.NewString()
	c.JSON(http.StatusOK, gin.H{
		"url":   h.authService.GetGoogleLoginURL(state),
		"state": state,
	})
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code for an application JWT
// @Description Exchanges the code server-side, creates the user on first sign-in and returns a JWT
// @Tags oauth
// @Accept  json
// @Produce  json
// @Param   code body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Code exchange failed"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for exchange code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to exchange authorization code")
		return
	}

	c.JSON(http.StatusOK, resp)
}
