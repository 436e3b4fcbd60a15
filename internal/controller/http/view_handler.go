package http

import (
	"errors"
	"net/http"

	"vidmint/internal/usecase"
	"vidmint/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	viewUseCase usecase.ViewUseCase
	logger      *logger.Logger
}

func NewViewHandler(viewUseCase usecase.ViewUseCase, logger *logger.Logger) *ViewHandler {
	return &ViewHandler{
		viewUseCase: viewUseCase,
		logger:      logger,
	}
}

// TrackView godoc
// @Summary      Track view
// @Description  Record a view for a video. At most one view per IP per video per day is counted toward earnings.
// @Tags         views
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/view [post]
func (h *ViewHandler) TrackView(c *gin.Context) {
	videoID := c.Param("id")
	ip := c.ClientIP()

	country := c.GetHeader("CF-IPCountry")
	if country == "" {
		country = "XX"
	}

	counted, err := h.viewUseCase.TrackView(videoID, ip, country)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		h.logger.Error("Failed to track view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"counted": counted})
}
