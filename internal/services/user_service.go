package services

import (
	"errors"
	"fmt"

	"github.com/akl-githu/platform-tracker/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

type UserService struct {
	db  *gorm.DB
	log *EventLogService
}

func NewUserService(db *gorm.DB, log *EventLogService) *UserService {
	return &UserService{db: db, log: log}
}

// List returns all users including the stored credential. Callers
// restrict this to admin views.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Add(actor, username, email, password, role string) error {
	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return ErrUsernameTaken
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Record(actor, fmt.Sprintf("Added new user: %s", username))
	return nil
}

// Update replaces username, email and role. The password is only
// replaced when a new value is supplied.
func (s *UserService) Update(actor string, id uint, username, email, password, role string) error {
	var current models.User
	if err := s.db.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	updates := map[string]interface{}{
		"username": username,
		"email":    email,
		"role":     role,
	}
	if password != "" {
		updates["password"] = password
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Record(actor, fmt.Sprintf("Updated user: %s", username))
	return nil
}

func (s *UserService) Delete(actor string, id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	s.log.Record(actor, fmt.Sprintf("Deleted user with ID: %d", id))
	return nil
}
