package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leadHandler handles HTTP requests related to leads.
type leadHandler struct {
	leadService       portssvc.LeadSvcFacade
	conversionService portssvc.ConversionSvcFacade
}

func newLeadHandler(ls portssvc.LeadSvcFacade, cs portssvc.ConversionSvcFacade) *leadHandler {
	return &leadHandler{leadService: ls, conversionService: cs}
}

// registerLeadRoutes registers routes related to leads.
func registerLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade, conversionService portssvc.ConversionSvcFacade) {
	h := newLeadHandler(leadService, conversionService)

	leads := rg.Group("/leads")
	{
		leads.POST("", h.createLead)
		leads.GET("", h.listLeads)
		leads.GET("/:leadID", h.getLeadByID)
		leads.PATCH("/:leadID/status", h.updateLeadStatus)
		leads.POST("/:leadID/convert", h.convertLead)
	}
}

// createLead godoc
// @Summary Create a new lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads [post]
func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLead", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "create lead")
		return
	}

	logger.Info("Lead created", slog.String("lead_id", lead.LeadID), slog.String("company", lead.CompanyName))
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

// getLeadByID godoc
// @Summary Get a lead by ID
// @Tags leads
// @Produce json
// @Param leadID path string true "Lead ID"
// @Success 200 {object} dto.LeadResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{leadID} [get]
func (h *leadHandler) getLeadByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	lead, err := h.leadService.GetLeadByID(c.Request.Context(), c.Param("leadID"))
	if err != nil {
		respondError(c, logger, err, "retrieve lead")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// listLeads godoc
// @Summary List leads
// @Tags leads
// @Produce json
// @Param status query string false "Filter by pipeline status"
// @Param mine query bool false "Only leads created by the requesting user"
// @Param limit query int false "Page size (default 25, max 100)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListLeadsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads [get]
func (h *leadHandler) listLeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLeadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.leadService.ListLeads(c.Request.Context(), params, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "list leads")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateLeadStatus godoc
// @Summary Move a lead along the pipeline
// @Description Applies a status transition. Transitions that skip pipeline stages or leave a terminal status are rejected.
// @Tags leads
// @Accept json
// @Produce json
// @Param leadID path string true "Lead ID"
// @Param status body dto.UpdateLeadStatusRequest true "Target status"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{leadID}/status [patch]
func (h *leadHandler) updateLeadStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	lead, err := h.leadService.UpdateLeadStatus(c.Request.Context(), c.Param("leadID"), req, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "update lead status")
		return
	}

	logger.Info("Lead status updated", slog.String("lead_id", lead.LeadID), slog.String("status", string(lead.Status)))
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// convertLead godoc
// @Summary Convert a lead into a pending conversion
// @Description Convenience endpoint that submits a conversion for the lead in the URL path.
// @Tags leads
// @Accept json
// @Produce json
// @Param leadID path string true "Lead ID"
// @Param conversion body dto.ConvertLeadRequest true "Conversion details"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{leadID}/convert [post]
func (h *leadHandler) convertLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	submitterUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.conversionService.SubmitConversion(c.Request.Context(), dto.SubmitConversionRequest{
		LeadID:         c.Param("leadID"),
		RepID:          req.RepID,
		RevenueAmount:  req.RevenueAmount,
		Currency:       req.Currency,
		CommissionRate: req.CommissionRate,
		ConversionDate: req.ConversionDate,
		Notes:          req.Notes,
	}, submitterUserID)
	if err != nil {
		respondError(c, logger, err, "convert lead")
		return
	}

	logger.Info("Lead converted",
		slog.String("lead_id", conversion.LeadID),
		slog.String("conversion_id", conversion.ConversionID))
	c.JSON(http.StatusCreated, dto.ToConversionResponse(conversion))
}
