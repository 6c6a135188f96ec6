package models

import "time"

// EventLog is one audit entry: who did what, when. Append-only.
type EventLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:100;index" json:"username"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

func (EventLog) TableName() string {
	return "events_logs"
}
