package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deductionHandler handles HTTP requests related to deduction rules.
type deductionHandler struct {
	deductionService portssvc.DeductionSvcFacade
}

func newDeductionHandler(ds portssvc.DeductionSvcFacade) *deductionHandler {
	return &deductionHandler{deductionService: ds}
}

// registerDeductionRoutes registers routes related to deduction rules.
func registerDeductionRoutes(rg *gin.RouterGroup, deductionService portssvc.DeductionSvcFacade) {
	h := newDeductionHandler(deductionService)

	deductions := rg.Group("/deductions")
	{
		deductions.POST("", h.createDeduction)
		deductions.GET("", h.listDeductions)
		deductions.GET("/:deductionID", h.getDeductionByID)
		deductions.PUT("/:deductionID", h.updateDeduction)
		deductions.DELETE("/:deductionID", h.deactivateDeduction)
	}
}

// createDeduction godoc
// @Summary Create a deduction rule
// @Description Adds a percentage deduction applied during conversion approval (admin operation). Rejected when the resulting active before-commission percentages would exceed 100.
// @Tags deductions
// @Accept json
// @Produce json
// @Param deduction body dto.CreateDeductionRequest true "Deduction rule"
// @Success 201 {object} dto.DeductionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /deductions [post]
func (h *deductionHandler) createDeduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeduction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	deduction, err := h.deductionService.CreateDeduction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "create deduction")
		return
	}

	logger.Info("Deduction rule created", slog.String("deduction_id", deduction.DeductionID), slog.String("label", deduction.Label))
	c.JSON(http.StatusCreated, dto.ToDeductionResponse(deduction))
}

// getDeductionByID godoc
// @Summary Get a deduction rule by ID
// @Tags deductions
// @Produce json
// @Param deductionID path string true "Deduction ID"
// @Success 200 {object} dto.DeductionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deductions/{deductionID} [get]
func (h *deductionHandler) getDeductionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deduction, err := h.deductionService.GetDeductionByID(c.Request.Context(), c.Param("deductionID"))
	if err != nil {
		respondError(c, logger, err, "retrieve deduction")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeductionResponse(deduction))
}

// listDeductions godoc
// @Summary List deduction rules
// @Tags deductions
// @Produce json
// @Param includeInactive query bool false "Include deactivated rules"
// @Success 200 {array} dto.DeductionResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /deductions [get]
func (h *deductionHandler) listDeductions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("includeInactive", "false"))

	deductions, err := h.deductionService.ListDeductions(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, logger, err, "list deductions")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeductionResponses(deductions))
}

// updateDeduction godoc
// @Summary Update a deduction rule
// @Description Updates a rule going forward. Conversions already approved keep the deduction snapshot taken at approval time.
// @Tags deductions
// @Accept json
// @Produce json
// @Param deductionID path string true "Deduction ID"
// @Param deduction body dto.UpdateDeductionRequest true "Fields to update"
// @Success 200 {object} dto.DeductionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deductions/{deductionID} [put]
func (h *deductionHandler) updateDeduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	deduction, err := h.deductionService.UpdateDeduction(c.Request.Context(), c.Param("deductionID"), req, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "update deduction")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeductionResponse(deduction))
}

// deactivateDeduction godoc
// @Summary Deactivate a deduction rule
// @Description Marks the rule inactive so future approvals skip it. Historical snapshots are untouched.
// @Tags deductions
// @Produce json
// @Param deductionID path string true "Deduction ID"
// @Success 204 "Deactivated"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deductions/{deductionID} [delete]
func (h *deductionHandler) deactivateDeduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	if err := h.deductionService.DeactivateDeduction(c.Request.Context(), c.Param("deductionID"), requestingUserID); err != nil {
		respondError(c, logger, err, "deactivate deduction")
		return
	}

	c.Status(http.StatusNoContent)
}
