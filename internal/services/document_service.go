package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/akl-githu/platform-tracker/internal/models"
	"github.com/akl-githu/platform-tracker/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrMissingFile      = errors.New("document file is required")
	ErrDocumentNotFound = errors.New("document not found")
)

// DocumentFields are the record fields supplied on add and update. All
// of them replace the stored values unconditionally; callers supply
// complete field sets.
type DocumentFields struct {
	PlatformName string
	DocType      string
	DocName      string
	Version      string
	Comments     string
}

// DocumentService keeps the documents table and the upload area in sync.
// The row and the file are two independently failing resources with no
// shared transaction, so operation ordering is load-bearing throughout:
// the current path is read back before an update overwrites the row, and
// the file is removed before the row on delete, keeping the window where
// a row references a missing file as small as possible.
type DocumentService struct {
	db      *gorm.DB
	uploads *storage.UploadStore
	log     *EventLogService
}

func NewDocumentService(db *gorm.DB, uploads *storage.UploadStore, log *EventLogService) *DocumentService {
	return &DocumentService{db: db, uploads: uploads, log: log}
}

// Add stores the upload under its sanitized name and inserts the record
// with path pointing at the stored file. The upload is required. If the
// insert fails the just-written file is removed again.
func (s *DocumentService) Add(actor string, f DocumentFields, filename string, content io.Reader) (*models.Document, error) {
	if content == nil {
		return nil, ErrMissingFile
	}

	storedPath, err := s.uploads.Save(filename, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	doc := models.Document{
		PlatformName: f.PlatformName,
		DocType:      f.DocType,
		DocName:      f.DocName,
		Version:      f.Version,
		Path:         storedPath,
		Comments:     f.Comments,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		if rmErr := s.uploads.Remove(storedPath); rmErr != nil {
			slog.Error("failed to remove orphaned upload", "path", storedPath, "error", rmErr)
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.log.Record(actor, fmt.Sprintf("Added new document for %s: %s", f.PlatformName, f.DocName))
	return &doc, nil
}

// Update replaces every record field. With an upload the file is stored
// and path replaced; without one the current path is read back first so
// the column is never blanked.
func (s *DocumentService) Update(actor string, id uint, f DocumentFields, filename string, content io.Reader) error {
	var current models.Document
	if err := s.db.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to load document: %w", err)
	}

	path := current.Path
	if content != nil {
		stored, err := s.uploads.Save(filename, content)
		if err != nil {
			return fmt.Errorf("failed to store upload: %w", err)
		}
		path = stored
	}

	updates := map[string]interface{}{
		"platform_name": f.PlatformName,
		"doc_type":      f.DocType,
		"doc_name":      f.DocName,
		"version":       f.Version,
		"path":          path,
		"comments":      f.Comments,
	}
	if err := s.db.Model(&models.Document{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	s.log.Record(actor, fmt.Sprintf("Updated document with ID: %d", id))
	return nil
}

// Delete removes the backing file, then the record. A record whose file
// is already gone is deleted silently; a missing record is ErrDocumentNotFound.
func (s *DocumentService) Delete(actor string, id uint) error {
	var current models.Document
	if err := s.db.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to load document: %w", err)
	}

	if err := s.uploads.Remove(current.Path); err != nil {
		slog.Warn("failed to remove document file", "path", current.Path, "error", err)
	}

	if err := s.db.Delete(&models.Document{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.log.Record(actor, fmt.Sprintf("Deleted document with ID: %d", id))
	return nil
}

func (s *DocumentService) ListAll() ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentService) ListByPlatform(platformName string) ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Where("platform_name = ?", platformName).Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
