package handlers

import (
	"net/http"

	eventRepo "ritmo/database/repository/event"
	"ritmo/services/export"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler exposes calendar-export endpoints for single occurrences.
type ExportHandler struct {
	Repo          eventRepo.EventRepository
	ExportService export.ExportService
}

func (h *ExportHandler) buildExport(c *gin.Context) (*export.CalendarExport, bool) {
	logger := getLogger(c)
	eventID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return nil, false
	}

	event, err := h.Repo.GetByID(eventID)
	if err != nil {
		logger.Error("Failed to fetch event for export", zap.String("id", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return nil, false
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}

	artifact, err := h.ExportService.ForOccurrence(*event, date)
	if err != nil {
		logger.Error("Calendar export failed", zap.String("id", eventID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return artifact, true
}

// DownloadICSHandler handles GET /api/events/:id/export/ics?date=...
// and streams the .ics file.
func (h *ExportHandler) DownloadICSHandler(c *gin.Context) {
	artifact, ok := h.buildExport(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(artifact.ICS))
}

// GoogleCalendarHandler handles GET /api/events/:id/export/google?date=...
// and returns the prefilled render URL.
func (h *ExportHandler) GoogleCalendarHandler(c *gin.Context) {
	artifact, ok := h.buildExport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": artifact.GoogleURL})
}
