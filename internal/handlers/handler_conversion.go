package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests for the conversion approval workflow.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

// registerConversionRoutes registers routes related to conversions.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", h.submitConversion)
		conversions.GET("", h.listConversions)
		conversions.GET("/:conversionID", h.getConversionByID)
		conversions.POST("/:conversionID/recommend", h.recommendConversion)
		conversions.POST("/:conversionID/approve", h.approveConversion)
		conversions.POST("/:conversionID/reject", h.rejectConversion)
		conversions.POST("/:conversionID/recompute", h.recomputeCommission)
	}
}

// submitConversion godoc
// @Summary Submit a conversion for approval
// @Description Records a won sale against a lead in pending status. Managers may submit on behalf of a rep via repID.
// @Tags conversions
// @Accept json
// @Produce json
// @Param conversion body dto.SubmitConversionRequest true "Conversion details"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /conversions [post]
func (h *conversionHandler) submitConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	submitterUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.conversionService.SubmitConversion(c.Request.Context(), req, submitterUserID)
	if err != nil {
		respondError(c, logger, err, "submit conversion")
		return
	}

	logger.Info("Conversion submitted", slog.String("conversion_id", conversion.ConversionID), slog.String("lead_id", conversion.LeadID))
	c.JSON(http.StatusCreated, dto.ToConversionResponse(conversion))
}

// getConversionByID godoc
// @Summary Get a conversion by ID
// @Description Reps can only access their own conversions; managers and above see everything.
// @Tags conversions
// @Produce json
// @Param conversionID path string true "Conversion ID"
// @Success 200 {object} dto.ConversionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions/{conversionID} [get]
func (h *conversionHandler) getConversionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.conversionService.GetConversionByID(c.Request.Context(), c.Param("conversionID"), requestingUserID)
	if err != nil {
		respondError(c, logger, err, "retrieve conversion")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// listConversions godoc
// @Summary List conversions
// @Description Lists conversions filtered by status, rep and date range. Reps are always restricted to their own conversions.
// @Tags conversions
// @Produce json
// @Param status query string false "Filter by workflow status"
// @Param repID query string false "Filter by rep (manager and above)"
// @Param dateFrom query string false "Start date (YYYY-MM-DD)"
// @Param dateTo query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 25, max 100)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListConversionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListConversionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.conversionService.ListConversions(c.Request.Context(), params, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "list conversions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recommendConversion godoc
// @Summary Recommend a pending conversion
// @Description Moves a pending conversion to recommended. Requires manager authority; the recommender must differ from the submitter.
// @Tags conversions
// @Produce json
// @Param conversionID path string true "Conversion ID"
// @Success 200 {object} dto.ConversionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conversion changed since it was read"
// @Security BearerAuth
// @Router /conversions/{conversionID}/recommend [post]
func (h *conversionHandler) recommendConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.conversionService.RecommendConversion(c.Request.Context(), c.Param("conversionID"), requestingUserID)
	if err != nil {
		respondError(c, logger, err, "recommend conversion")
		return
	}

	logger.Info("Conversion recommended", slog.String("conversion_id", conversion.ConversionID))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// approveConversion godoc
// @Summary Approve a recommended conversion
// @Description Approves the conversion, snapshots the active deduction rules and computes the commission in the same update.
// @Tags conversions
// @Produce json
// @Param conversionID path string true "Conversion ID"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "No commission rate available"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conversion changed since it was read"
// @Security BearerAuth
// @Router /conversions/{conversionID}/approve [post]
func (h *conversionHandler) approveConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.conversionService.ApproveConversion(c.Request.Context(), c.Param("conversionID"), requestingUserID)
	if err != nil {
		respondError(c, logger, err, "approve conversion")
		return
	}

	logger.Info("Conversion approved", slog.String("conversion_id", conversion.ConversionID))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// rejectConversion godoc
// @Summary Reject a conversion
// @Description Moves a pending or recommended conversion to rejected. A reason is required.
// @Tags conversions
// @Accept json
// @Produce json
// @Param conversionID path string true "Conversion ID"
// @Param rejection body dto.RejectConversionRequest true "Rejection reason"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions/{conversionID}/reject [post]
func (h *conversionHandler) rejectConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RejectConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.conversionService.RejectConversion(c.Request.Context(), c.Param("conversionID"), req, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "reject conversion")
		return
	}

	logger.Info("Conversion rejected", slog.String("conversion_id", conversion.ConversionID))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// recomputeCommission godoc
// @Summary Recompute an approved conversion's commission
// @Description Re-runs the commission math from the deduction snapshot stored at approval (admin operation). The snapshot is never replaced.
// @Tags conversions
// @Produce json
// @Param conversionID path string true "Conversion ID"
// @Success 200 {object} dto.ConversionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions/{conversionID}/recompute [post]
func (h *conversionHandler) recomputeCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.conversionService.RecomputeCommission(c.Request.Context(), c.Param("conversionID"), requestingUserID)
	if err != nil {
		respondError(c, logger, err, "recompute commission")
		return
	}

	logger.Info("Commission recomputed", slog.String("conversion_id", conversion.ConversionID))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}
