package services

import (
	"os"
	"strings"
	"testing"

	"github.com/akl-githu/platform-tracker/internal/models"
	"github.com/akl-githu/platform-tracker/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFields = DocumentFields{
	PlatformName: "Atlas",
	DocType:      "Design",
	DocName:      "Architecture Overview",
	Version:      "1.0",
	Comments:     "initial revision",
}

func TestAddRequiresUpload(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	_, err = svc.Add("alice", sampleFields, "", nil)
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.EqualValues(t, 0, countEvents(t, db))
}

func TestAddWritesFileAndRecord(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	doc, err := svc.Add("alice", sampleFields, "report.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	require.NotZero(t, doc.ID)

	// The stored path resolves inside the upload area and holds the
	// uploaded bytes.
	path, err := uploads.Resolve("report.pdf")
	require.NoError(t, err)
	assert.Equal(t, doc.Path, path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, doc.Path, all[0].Path)

	entry := lastEvent(t, db)
	assert.Equal(t, "Added new document for Atlas: Architecture Overview", entry.Action)
}

func TestAddSameNameOverwrites(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	_, err = svc.Add("alice", sampleFields, "report.pdf", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = svc.Add("alice", sampleFields, "report.pdf", strings.NewReader("second"))
	require.NoError(t, err)

	path, err := uploads.Resolve("report.pdf")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestUpdateWithoutUploadPreservesPath(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	doc, err := svc.Add("alice", sampleFields, "report.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	changed := sampleFields
	changed.DocName = "Renamed Overview"
	require.NoError(t, svc.Update("alice", doc.ID, changed, "", nil))

	var got models.Document
	require.NoError(t, db.First(&got, doc.ID).Error)
	assert.Equal(t, "Renamed Overview", got.DocName)
	assert.Equal(t, doc.Path, got.Path)

	entry := lastEvent(t, db)
	assert.Contains(t, entry.Action, "Updated document with ID:")
}

func TestUpdateWithUploadReplacesPath(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	doc, err := svc.Add("alice", sampleFields, "v1.pdf", strings.NewReader("one"))
	require.NoError(t, err)

	require.NoError(t, svc.Update("alice", doc.ID, sampleFields, "v2.pdf", strings.NewReader("two")))

	var got models.Document
	require.NoError(t, db.First(&got, doc.ID).Error)
	assert.NotEqual(t, doc.Path, got.Path)

	path, err := uploads.Resolve("v2.pdf")
	require.NoError(t, err)
	assert.Equal(t, got.Path, path)
}

func TestUpdateMissingRecord(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	err = svc.Update("alice", 404, sampleFields, "", nil)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDeleteRemovesFileAndRecord(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	doc, err := svc.Add("alice", sampleFields, "report.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete("alice", doc.ID))

	_, err = uploads.Resolve("report.pdf")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete("alice", doc.ID), ErrDocumentNotFound)
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	// Legacy record: path never had a backing file.
	legacy := models.Document{PlatformName: "Atlas", DocName: "Old Doc", Path: "shared-drive://old/location"}
	require.NoError(t, db.Create(&legacy).Error)

	require.NoError(t, svc.Delete("alice", legacy.ID))

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListByPlatform(t *testing.T) {
	db := newTestDB(t)
	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	svc := NewDocumentService(db, uploads, NewEventLogService(db))

	_, err = svc.Add("alice", sampleFields, "a.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	other := sampleFields
	other.PlatformName = "Borealis"
	_, err = svc.Add("alice", other, "b.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	docs, err := svc.ListByPlatform("Atlas")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Atlas", docs[0].PlatformName)

	none, err := svc.ListByPlatform("Unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}
