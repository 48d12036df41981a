package handlers

import (
	"net/http"

	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated dashboard endpoints
type PublicHandler struct {
	statsService    *services.StatsService
	activityService *services.ActivityService
}

func NewPublicHandler(statsService *services.StatsService, activityService *services.ActivityService) *PublicHandler {
	return &PublicHandler{
		statsService:    statsService,
		activityService: activityService,
	}
}

// GetStats returns live aggregate counts
func (h *PublicHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.Collect()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetActivities returns the recent-activity feed
func (h *PublicHandler) GetActivities(c *gin.Context) {
	activities, err := h.activityService.Recent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}
