package models

// Document pairs a database record with a file in the upload area. Path
// points at the stored artifact; rows created before upload support may
// carry an arbitrary caller-supplied string with no backing file.
type Document struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PlatformName string `gorm:"size:100;index" json:"platform_name"`
	DocType      string `gorm:"size:100" json:"doc_type"`
	DocName      string `gorm:"size:255" json:"doc_name"`
	Version      string `gorm:"size:50" json:"version"`
	Path         string `gorm:"size:512" json:"path"`
	Comments     string `gorm:"type:text" json:"comments"`
}
