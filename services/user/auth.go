package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ritmo/models"
	"ritmo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// verifyPasswordComplexity checks that the password is long enough and mixes
// letter cases with at least one digit.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

// RegisterUser creates a new user, hashes the password, and returns a signed token.
func (s *DefaultUserService) RegisterUser(data RegistrationData) (*AuthResponse, error) {
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	if data.Email == "" || data.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if data.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !emailPattern.MatchString(data.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if err := verifyPasswordComplexity(data.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New().String(),
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: string(hashedPassword),
		City:         data.City,
		Styles:       data.Styles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(&user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.clearAuthCache(user.ID)

	return &AuthResponse{
		ID:       user.ID,
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		City:     user.City,
	}, nil
}

// AuthenticateUser verifies credentials and returns a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.clearAuthCache(user.ID)

	return &AuthResponse{
		ID:       user.ID,
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		City:     user.City,
	}, nil
}

func (s *DefaultUserService) clearAuthCache(userID string) {
	cacheKey := utils.AuthCachePrefix + userID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache", zap.Error(err))
	}
}
