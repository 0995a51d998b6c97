package handlers

import (
	"net/http"

	portssvc "github.com/finbook/finbook/internal/core/ports/services"
	"github.com/finbook/finbook/internal/dto"
	"github.com/finbook/finbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the dashboard/reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/income-summary", h.getIncomeSummary)
	}
}

// getDashboard godoc
// @Summary Get dashboard aggregations
// @Description Returns per-group totals, category breakdowns and the monthly trend for the selected period
// @Tags reports
// @Produce  json
// @Param   mode query string false "Period mode" Enums(month, year, all) default(month)
// @Param   date query string false "Reference date YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// getIncomeSummary godoc
// @Summary Get income statistics
// @Description Returns count/average/max/min statistics over income transactions for the selected period
// @Tags reports
// @Produce  json
// @Param   mode query string false "Period mode" Enums(month, year, all) default(month)
// @Param   date query string false "Reference date YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.IncomeSummary
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/income-summary [get]
func (h *reportingHandler) getIncomeSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.GetIncomeSummary(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute income summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
