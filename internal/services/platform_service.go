package services

import (
	"fmt"

	"github.com/akl-githu/platform-tracker/internal/models"
	"gorm.io/gorm"
)

// PlatformService is a read-only projection over the platforms table.
type PlatformService struct {
	db *gorm.DB
}

func NewPlatformService(db *gorm.DB) *PlatformService {
	return &PlatformService{db: db}
}

func (s *PlatformService) List() ([]models.Platform, error) {
	var platforms []models.Platform
	if err := s.db.Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	return platforms, nil
}

// DistinctNames feeds the platform dropdown on the tracker page.
func (s *PlatformService) DistinctNames() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Platform{}).Distinct("name").Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list platform names: %w", err)
	}
	return names, nil
}
