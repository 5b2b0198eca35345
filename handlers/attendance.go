package handlers

import (
	"errors"
	"net/http"

	"ritmo/services/attendance"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AttendanceHandler exposes per-occurrence RSVP endpoints.
type AttendanceHandler struct {
	AttendanceService attendance.AttendanceService
}

type attendRequest struct {
	EventID string `json:"eventId" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// AttendHandler handles POST /api/attendance.
func (h *AttendanceHandler) AttendHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var req attendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.AttendanceService.Attend(userID, req.EventID, req.Date); err != nil {
		var attErr *attendance.AttendanceError
		if errors.As(err, &attErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": attErr.Message})
			return
		}
		logger.Error("Attend failed", zap.String("userID", userID), zap.String("eventID", req.EventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Attendance recorded"})
}

// UnattendHandler handles DELETE /api/attendance.
func (h *AttendanceHandler) UnattendHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var req attendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.AttendanceService.Unattend(userID, req.EventID, req.Date); err != nil {
		logger.Error("Unattend failed", zap.String("userID", userID), zap.String("eventID", req.EventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance removed"})
}

// CountHandler handles GET /api/attendance/count?eventId=...&date=...
func (h *AttendanceHandler) CountHandler(c *gin.Context) {
	logger := getLogger(c)

	eventID := c.Query("eventId")
	date := c.Query("date")
	if eventID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventId and date are required"})
		return
	}

	count, err := h.AttendanceService.Count(eventID, date)
	if err != nil {
		var attErr *attendance.AttendanceError
		if errors.As(err, &attErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": attErr.Message})
			return
		}
		logger.Error("Count failed", zap.String("eventID", eventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventId": eventID, "date": date, "count": count})
}

// ListMineHandler handles GET /api/attendance/mine.
func (h *AttendanceHandler) ListMineHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	records, err := h.AttendanceService.ListForUser(userID)
	if err != nil {
		logger.Error("List attendance failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list attendance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": records, "count": len(records)})
}
