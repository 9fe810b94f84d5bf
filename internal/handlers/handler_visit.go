package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// visitHandler handles HTTP requests related to visits.
type visitHandler struct {
	visitService portssvc.VisitSvcFacade
}

func newVisitHandler(vs portssvc.VisitSvcFacade) *visitHandler {
	return &visitHandler{visitService: vs}
}

// registerVisitRoutes registers routes related to visits.
func registerVisitRoutes(rg *gin.RouterGroup, visitService portssvc.VisitSvcFacade) {
	h := newVisitHandler(visitService)

	visits := rg.Group("/visits")
	{
		visits.POST("", h.logVisit)
		visits.GET("", h.listVisits)
		visits.GET("/:visitID", h.getVisitByID)
		visits.POST("/:visitID/complete", h.completeVisit)
	}
}

// completeVisitRequest is the optional body of the complete endpoint.
type completeVisitRequest struct {
	Outcome *string `json:"outcome,omitempty"`
}

// logVisit godoc
// @Summary Log a client visit
// @Description Records a visit. Future-dated visits are scheduled; otherwise completed. Side effects that fail (client sync, lead generation, reminders, calendar) are reported in the warnings field.
// @Tags visits
// @Accept json
// @Produce json
// @Param visit body dto.LogVisitRequest true "Visit details"
// @Success 201 {object} dto.VisitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /visits [post]
func (h *visitHandler) logVisit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LogVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for LogVisit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	repUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	visit, warnings, err := h.visitService.LogVisit(c.Request.Context(), req, repUserID)
	if err != nil {
		respondError(c, logger, err, "log visit")
		return
	}

	resp := dto.ToVisitResponse(visit)
	resp.Warnings = warnings
	c.JSON(http.StatusCreated, resp)
}

// getVisitByID godoc
// @Summary Get a visit by ID
// @Tags visits
// @Produce json
// @Param visitID path string true "Visit ID"
// @Success 200 {object} dto.VisitResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /visits/{visitID} [get]
func (h *visitHandler) getVisitByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	visit, err := h.visitService.GetVisitByID(c.Request.Context(), c.Param("visitID"))
	if err != nil {
		respondError(c, logger, err, "retrieve visit")
		return
	}

	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

// listVisits godoc
// @Summary List the authenticated rep's visits
// @Tags visits
// @Produce json
// @Param limit query int false "Page size (default 25, max 100)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListVisitsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /visits [get]
func (h *visitHandler) listVisits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVisitsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.visitService.ListVisits(c.Request.Context(), params, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "list visits")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// completeVisit godoc
// @Summary Mark a scheduled visit as completed
// @Tags visits
// @Accept json
// @Produce json
// @Param visitID path string true "Visit ID"
// @Param body body completeVisitRequest false "Visit outcome"
// @Success 200 {object} dto.VisitResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Visit already completed"
// @Security BearerAuth
// @Router /visits/{visitID}/complete [post]
func (h *visitHandler) completeVisit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req completeVisitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	visit, warnings, err := h.visitService.CompleteVisit(c.Request.Context(), c.Param("visitID"), req.Outcome, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "complete visit")
		return
	}

	resp := dto.ToVisitResponse(visit)
	resp.Warnings = warnings
	c.JSON(http.StatusOK, resp)
}
