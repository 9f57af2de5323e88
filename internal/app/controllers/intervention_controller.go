package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/riskwatch/internal/app/models/dto"
	"github.com/yigit/riskwatch/internal/app/services"
	"github.com/yigit/riskwatch/internal/middleware"
)

// InterventionController handles intervention tracking
type InterventionController struct {
	interventionService services.InterventionService
	logger              zerolog.Logger
}

// NewInterventionController creates a new InterventionController
func NewInterventionController(interventionService services.InterventionService, logger zerolog.Logger) *InterventionController {
	return &InterventionController{
		interventionService: interventionService,
		logger:              logger,
	}
}

// ListInterventions returns a student's intervention history
// @Summary List a student's interventions
// @Description Newest first. A student without interventions, or an unknown student, yields an empty list.
// @Tags interventions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {array} dto.InterventionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{id}/interventions [get]
func (c *InterventionController) ListInterventions(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	list, err := c.interventionService.ListInterventions(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInterventionListResponse(list))
}

// CreateIntervention logs a new intervention for a student
// @Summary Log an intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.CreateInterventionRequest true "Intervention"
// @Success 201 {object} dto.CreatedResponse "Intervention logged"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{id}/intervention [post]
func (c *InterventionController) CreateIntervention(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateInterventionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	id, err := c.interventionService.CreateIntervention(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Intervention logged successfully", ID: id})
}

// UpdateIntervention changes an intervention's status and/or notes
// @Summary Update an intervention
// @Description Omitted fields keep their current value; an empty body changes nothing
// @Tags interventions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Intervention ID" Format(int64) minimum(1)
// @Param request body dto.UpdateInterventionRequest false "Fields to change"
// @Success 200 {object} dto.SuccessResponse "Intervention updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Intervention not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /intervention/{id} [put]
func (c *InterventionController) UpdateIntervention(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInterventionRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	if _, err := c.interventionService.UpdateIntervention(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Intervention updated successfully"})
}
