package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := &debtHandler{debtService: debtService}

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.POST("", h.createDebt)
		debts.PUT("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)
	}
}

// listDebts godoc
// @Summary List the user's debts
// @Tags debts
// @Produce  json
// @Success 200 {array} dto.DebtResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list debts")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponses(debts))
}

// createDebt godoc
// @Summary Record a debt
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create debt")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// updateDebt godoc
// @Summary Update a debt
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} dto.DebtResponse
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Tags debts
// @Param   id path string true "Debt ID"
// @Success 204 "No content"
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete debt")
		return
	}

	c.Status(http.StatusNoContent)
}
