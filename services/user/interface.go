package user

import (
	userRepo "ritmo/database/repository/user"
	"ritmo/models"
)

// RegistrationData carries the fields a new account is created from.
type RegistrationData struct {
	Email    string   `json:"email" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	City     string   `json:"city,omitempty"`
	Styles   []string `json:"styles,omitempty"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	City     string `json:"city,omitempty"`
}

type UserService interface {
	// RegisterUser creates a new account and returns a signed token.
	RegisterUser(data RegistrationData) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdatePreferences replaces the user's city and followed styles.
	UpdatePreferences(userID, city string, styles []string) (*models.User, error)
	// DeleteUser removes the account.
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
