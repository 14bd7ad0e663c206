package controller

import (
	"context"
	"net/http"
	"strings"

	"kotseai-backend/models"
	"kotseai-backend/services"
	"kotseai-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	ctx          context.Context
	videoService services.VideoServiceInterface
	logger       logger.Logger
}

func NewVideoController(ctx context.Context, svc services.VideoServiceInterface, log logger.Logger) *VideoController {
	return &VideoController{
		ctx:          ctx,
		videoService: svc,
		logger:       log,
	}
}

// Search handles GET /api/v1/videos
// @Summary Search DIY videos
// @Description Look up tutorial videos for a maintenance task
// @Tags Videos
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.APIResponse "Video suggestions"
// @Failure 400 {object} models.APIResponse "Bad Request - Missing query"
// @Router /videos [get]
func (h *VideoController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: "query parameter q is required",
			},
		})
		return
	}

	items := h.videoService.Search(c.Request.Context(), query)

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Video suggestions retrieved",
		Data:    gin.H{"items": items},
	})
}
