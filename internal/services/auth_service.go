package services

import (
	"errors"
	"fmt"

	"github.com/akl-githu/platform-tracker/internal/config"
	"github.com/akl-githu/platform-tracker/internal/models"
	"github.com/akl-githu/platform-tracker/internal/session"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
	log *EventLogService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, log *EventLogService) *AuthService {
	return &AuthService{db: db, cfg: cfg, log: log}
}

// Authenticate matches exactly one user row by (username, password).
// Credentials are compared as opaque strings with no hashing or
// normalization, preserving the stored-value format of the existing
// users table. On success it issues a signed session token and records
// the login; a mismatch records nothing.
func (s *AuthService) Authenticate(username, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := session.NewToken(&user, s.cfg.SessionSecret, s.cfg.SessionExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.log.Record(user.Username, "User logged in")
	return &user, token, nil
}

// Logout records the logout. The cookie itself is cleared by the handler.
func (s *AuthService) Logout(username string) {
	s.log.Record(username, "User logged out")
}
