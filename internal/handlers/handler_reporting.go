package handlers

import (
	"net/http"
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for activity reporting.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getPeriodSummary)
		reports.GET("/rep-performance", h.getRepPerformance)
	}
}

// periodWindow resolves a named period onto a half-open UTC window ending
// after today. Weeks start on Monday.
func periodWindow(kind string, now time.Time) domain.ReportPeriod {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch kind {
	case "day":
		return domain.ReportPeriod{Start: day, End: day.AddDate(0, 0, 1)}
	case "week":
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return domain.ReportPeriod{Start: start, End: start.AddDate(0, 0, 7)}
	default: // month
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return domain.ReportPeriod{Start: start, End: start.AddDate(0, 1, 0)}
	}
}

// getPeriodSummary godoc
// @Summary Get an activity summary for a period
// @Description Aggregates visits, leads and approved conversions for the current day, week or month. Team scope requires manager authority, organization scope director authority.
// @Tags reports
// @Produce json
// @Param period query string false "day, week or month (default month)"
// @Param scope query string false "individual, team or organization (default individual)"
// @Success 200 {object} dto.PeriodSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getPeriodSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Period == "" {
		params.Period = "month"
	}
	if params.Scope == "" {
		params.Scope = "individual"
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetPeriodSummary(
		c.Request.Context(),
		periodWindow(params.Period, time.Now()),
		domain.ReportScope(params.Scope),
		requestingUserID,
	)
	if err != nil {
		respondError(c, logger, err, "build summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(summary))
}

// getRepPerformance godoc
// @Summary Get a per-rep performance breakdown
// @Description Breaks a team or organization period down per rep with conversion ratios. Individual scope is not valid here.
// @Tags reports
// @Produce json
// @Param period query string false "day, week or month (default month)"
// @Param scope query string false "team or organization (default team)"
// @Success 200 {array} domain.RepPerformanceRow
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/rep-performance [get]
func (h *reportingHandler) getRepPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Period == "" {
		params.Period = "month"
	}
	if params.Scope == "" {
		params.Scope = "team"
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	rows, err := h.reportingService.GetRepPerformance(
		c.Request.Context(),
		periodWindow(params.Period, time.Now()),
		domain.ReportScope(params.Scope),
		requestingUserID,
	)
	if err != nil {
		respondError(c, logger, err, "build performance report")
		return
	}

	c.JSON(http.StatusOK, rows)
}
