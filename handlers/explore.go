package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ritmo/models"
	"ritmo/services/explore"
	"ritmo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExploreHandler exposes the dated feed endpoints.
type ExploreHandler struct {
	ExploreService explore.ExploreService
}

// ExploreHandlerFunc handles GET /api/explore. Filter state arrives as query
// parameters; repeated keys build the slice fields.
func (h *ExploreHandler) ExploreHandlerFunc(c *gin.Context) {
	logger := getLogger(c)

	var filter models.ExploreFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		logger.Error("Invalid explore filter", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	// The unfiltered request is the hot path; it is served from the
	// cron-refreshed cached copy when one exists.
	var items []models.ExploreItem
	var err error
	if filter.IsZero() {
		items, err = h.ExploreService.DefaultFeed()
	} else {
		items, err = h.ExploreService.Explore(filter)
	}
	if err != nil {
		logger.Error("Explore feed failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build feed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// UpcomingHandlerFunc handles GET /api/events/:id/upcoming.
func (h *ExploreHandler) UpcomingHandlerFunc(c *gin.Context) {
	logger := getLogger(c)
	eventID := c.Param("id")

	lookahead := 0
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a non-negative integer"})
			return
		}
		lookahead = n
	}

	occurrences, err := h.ExploreService.UpcomingForEvent(eventID, lookahead)
	if err != nil {
		var exploreErr *explore.ExploreError
		if errors.As(err, &exploreErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": exploreErr.Message})
			return
		}
		logger.Error("Upcoming projection failed", zap.String("eventID", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project occurrences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventId": eventID, "occurrences": occurrences})
}
