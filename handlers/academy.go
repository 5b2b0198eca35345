package handlers

import (
	"net/http"
	"time"

	academyRepo "ritmo/database/repository/academy"
	"ritmo/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AcademyHandler exposes academy endpoints.
type AcademyHandler struct {
	Repo academyRepo.AcademyRepository
}

// GetAcademyHandler handles GET /api/academies/:id.
func (h *AcademyHandler) GetAcademyHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	academy, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Failed to fetch academy", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch academy"})
		return
	}
	if academy == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Academy not found"})
		return
	}
	c.JSON(http.StatusOK, academy)
}

// ListAcademiesHandler handles GET /api/academies?city=...&style=...
func (h *AcademyHandler) ListAcademiesHandler(c *gin.Context) {
	logger := getLogger(c)
	city := c.Query("city")
	style := c.Query("style")

	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	academies, err := h.Repo.GetByCity(city, style)
	if err != nil {
		logger.Error("Failed to list academies", zap.String("city", city), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list academies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"academies": academies, "count": len(academies)})
}

// CreateAcademyHandler handles POST /api/academies.
func (h *AcademyHandler) CreateAcademyHandler(c *gin.Context) {
	logger := getLogger(c)

	var academy models.Academy
	if err := c.ShouldBindJSON(&academy); err != nil {
		logger.Error("Invalid academy payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if academy.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	academy.ID = uuid.New().String()
	now := time.Now()
	academy.CreatedAt = now
	academy.UpdatedAt = now

	if err := h.Repo.Create(&academy); err != nil {
		logger.Error("Failed to create academy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create academy"})
		return
	}
	c.JSON(http.StatusCreated, academy)
}
