package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := &loanHandler{loanService: loanService}

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.POST("", h.createLoan)
		loans.PUT("/:id", h.updateLoan)
		loans.DELETE("/:id", h.deleteLoan)
	}
}

// listLoans godoc
// @Summary List the user's loans
// @Tags loans
// @Produce  json
// @Success 200 {array} dto.LoanResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// createLoan godoc
// @Summary Record a loan
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create loan")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// updateLoan godoc
// @Summary Update a loan
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   id path string true "Loan ID"
// @Param   loan body dto.UpdateLoanRequest true "Fields to update"
// @Success 200 {object} dto.LoanResponse
// @Security BearerAuth
// @Router /loans/{id} [put]
func (h *loanHandler) updateLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	loan, err := h.loanService.UpdateLoan(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// deleteLoan godoc
// @Summary Delete a loan
// @Tags loans
// @Param   id path string true "Loan ID"
// @Success 204 "No content"
// @Security BearerAuth
// @Router /loans/{id} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.loanService.DeleteLoan(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete loan")
		return
	}

	c.Status(http.StatusNoContent)
}
