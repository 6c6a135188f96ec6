package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/akl-githu/platform-tracker/internal/models"
	"gorm.io/gorm"
)

type EventLogService struct {
	db *gorm.DB
}

func NewEventLogService(db *gorm.DB) *EventLogService {
	return &EventLogService{db: db}
}

// Record appends one audit entry with a server-generated timestamp at
// seconds precision. A failed write is logged but never fails the
// operation that triggered it.
func (s *EventLogService) Record(username, action string) {
	entry := models.EventLog{
		Username:  username,
		Action:    action,
		Timestamp: time.Now().Truncate(time.Second),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		slog.Error("event log write failed", "username", username, "action", action, "error", err)
	}
}

// List returns audit entries, newest first. Both filters are optional
// and ANDed: an exact username match and a calendar day in YYYY-MM-DD
// form. A malformed day matches nothing, as the legacy SQL did.
func (s *EventLogService) List(username, day string) ([]models.EventLog, error) {
	q := s.db.Model(&models.EventLog{})

	if username != "" {
		q = q.Where("username = ?", username)
	}
	if day != "" {
		start, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err != nil {
			return []models.EventLog{}, nil
		}
		q = q.Where("timestamp >= ? AND timestamp < ?", start, start.Add(24*time.Hour))
	}

	var logs []models.EventLog
	if err := q.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list event logs: %w", err)
	}
	return logs, nil
}
