package controller

import (
	"context"
	"errors"
	"net/http"

	"kotseai-backend/models"
	"kotseai-backend/services"
	"kotseai-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	ctx                context.Context
	maintenanceService services.MaintenanceServiceInterface
	logger             logger.Logger
}

func NewMaintenanceController(ctx context.Context, svc services.MaintenanceServiceInterface, log logger.Logger) *MaintenanceController {
	return &MaintenanceController{
		ctx:                ctx,
		maintenanceService: svc,
		logger:             log,
	}
}

// Generate handles POST /api/v1/maintenance
// @Summary Generate a maintenance checklist
// @Description Produce a personalized three-bucket maintenance schedule for a vehicle
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body models.MaintenanceRequest true "Vehicle details"
// @Success 200 {object} models.APIResponse "Checklist generated successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid vehicle data"
// @Failure 502 {object} models.APIResponse "Bad Gateway - Generation service returned an unusable answer"
// @Router /maintenance [post]
func (h *MaintenanceController) Generate(c *gin.Context) {
	var req models.MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	profile, err := req.Profile()
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	// Empty when the caller is anonymous; persistence is skipped then.
	userID := c.GetString("user_id")

	schedule, err := h.maintenanceService.GenerateSchedule(c.Request.Context(), profile, userID)
	if err != nil {
		if services.IsValidationError(err) {
			h.badRequest(c, err.Error())
			return
		}
		if errors.Is(err, services.ErrMalformedResponse) {
			c.JSON(http.StatusBadGateway, models.APIResponse{
				Status:  "error",
				Code:    http.StatusBadGateway,
				Message: "Could not generate a checklist, please try again",
				Error: &models.APIError{
					Type:    "GenerationError",
					Details: err.Error(),
				},
			})
			return
		}
		h.logger.Errorf("Failed to generate schedule: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate checklist",
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
		Message: "Checklist generated successfully",
		Data:    gin.H{"maintenance": schedule},
	})
}

// ListChecklists handles GET /api/v1/maintenance/checklists
// @Summary List saved checklists
// @Description Return the authenticated user's stored checklists, newest first
// @Tags Maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Checklists retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized - Missing or invalid token"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Lookup failed"
// @Router /maintenance/checklists [get]
func (h *MaintenanceController) ListChecklists(c *gin.Context) {
	userID := c.GetString("user_id")

	checklists, err := h.maintenanceService.ListChecklists(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf("Failed to list checklists for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve checklists",
			Error: &models.APIError{
				Type:    "DatabaseError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Checklists retrieved successfully",
		Data:    gin.H{"checklists": checklists},
	})
}

func (h *MaintenanceController) badRequest(c *gin.Context, details string) {
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
