package controller

import (
	"context"
	"net/http"

	"kotseai-backend/models"
	"kotseai-backend/services"
	"kotseai-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type CostController struct {
	ctx         context.Context
	costService services.CostServiceInterface
	logger      logger.Logger
}

func NewCostController(ctx context.Context, svc services.CostServiceInterface, log logger.Logger) *CostController {
	return &CostController{
		ctx:         ctx,
		costService: svc,
		logger:      log,
	}
}

// Estimate handles POST /api/v1/maintenance/cost
// @Summary Estimate maintenance costs
// @Description Price the submitted maintenance tasks for the vehicle. A degraded
// @Description estimate returns an empty row set rather than an error.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body models.CostRequest true "Vehicle details and tasks to price"
// @Success 200 {object} models.APIResponse "Cost estimate produced"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid vehicle data or empty task list"
// @Router /maintenance/cost [post]
func (h *CostController) Estimate(c *gin.Context) {
	var req models.CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	profile, err := req.Profile()
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	report, err := h.costService.EstimateCosts(c.Request.Context(), profile, req.Items)
	if err != nil {
		if services.IsValidationError(err) {
			h.badRequest(c, err.Error())
			return
		}
		h.logger.Errorf("Failed to estimate costs: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to estimate costs",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Cost estimate produced",
		Data:    report,
	})
}

func (h *CostController) badRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: details,
		},
	})
}
