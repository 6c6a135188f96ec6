package models

// Platform is a tracked software platform. Read-only from this service's
// perspective; documents reference it by name, not by foreign key.
type Platform struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Owner       string `gorm:"size:100" json:"owner"`
}
