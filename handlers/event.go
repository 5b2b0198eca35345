package handlers

import (
	"net/http"
	"time"

	eventRepo "ritmo/database/repository/event"
	"ritmo/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventHandler exposes event CRUD endpoints.
type EventHandler struct {
	Repo eventRepo.EventRepository
}

// GetEventHandler handles GET /api/events/:id.
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	event, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Failed to fetch event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetEventsByAcademyHandler handles GET /api/academies/:id/events.
func (h *EventHandler) GetEventsByAcademyHandler(c *gin.Context) {
	logger := getLogger(c)
	academyID := c.Param("id")

	events, err := h.Repo.GetByAcademy(academyID)
	if err != nil {
		logger.Error("Failed to fetch academy events", zap.String("academyID", academyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// CreateEventHandler handles POST /api/events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	logger := getLogger(c)

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Error("Invalid event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if event.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	event.ID = uuid.New().String()
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := h.Repo.Create(&event); err != nil {
		logger.Error("Failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEventHandler handles PUT /api/events/:id.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	existing, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Failed to fetch event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	event.ID = id
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = time.Now()

	if err := h.Repo.Update(&event); err != nil {
		logger.Error("Failed to update event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEventHandler handles DELETE /api/events/:id.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Failed to delete event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
