package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/riskwatch/internal/app/services"
	"github.com/yigit/riskwatch/internal/middleware"
)

// PredictionController serves per-student risk assessments
type PredictionController struct {
	predictionService services.PredictionService
	logger            zerolog.Logger
}

// NewPredictionController creates a new PredictionController
func NewPredictionController(predictionService services.PredictionService, logger zerolog.Logger) *PredictionController {
	return &PredictionController{
		predictionService: predictionService,
		logger:            logger,
	}
}

// Predict classifies a student and returns the recommended action
// @Summary Predict dropout risk
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /predict/{id} [get]
func (c *PredictionController) Predict(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.predictionService.PredictStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
