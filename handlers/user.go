package handlers

import (
	"net/http"

	userService "ritmo/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	UserService userService.UserService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req userService.RegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.RegisterUser(req)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /api/users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePreferencesHandler handles PUT /api/users/me/preferences.
func (h *UserHandler) UpdatePreferencesHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var req struct {
		City   string   `json:"city"`
		Styles []string `json:"styles"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.UpdatePreferences(userID, req.City, req.Styles)
	if err != nil {
		logger.Error("Preference update failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	if err := h.UserService.DeleteUser(userID); err != nil {
		logger.Error("Delete error", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
