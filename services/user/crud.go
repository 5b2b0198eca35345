package user

import (
	"fmt"
	"time"

	"ritmo/models"
	"ritmo/utils"

	"go.uber.org/zap"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user")
	}
	if user == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return user, nil
}

// UpdatePreferences replaces the user's city and followed styles.
func (s *DefaultUserService) UpdatePreferences(userID, city string, styles []string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.City = city
	user.Styles = styles
	user.UpdatedAt = time.Now()

	if err := s.Repo.Update(user); err != nil {
		utils.GetLogger().Error("Failed to update user preferences", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update preferences")
	}
	return user, nil
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		utils.GetLogger().Error("Failed to delete user", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to delete user")
	}
	s.clearAuthCache(userID)
	return nil
}
