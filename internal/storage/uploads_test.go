package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.pdf":          "report.pdf",
		"../../etc/passwd":    "passwd",
		"..\\..\\evil.exe":    "evil.exe",
		"my report v1.pdf":    "my_report_v1.pdf",
		"weird$chars%.txt":    "weird_chars_.txt",
		"..":                  "file",
		"":                    "file",
		".hidden":             "hidden",
		"nested/dir/file.txt": "file.txt",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}

func TestSaveAndResolveRoundTrip(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("report.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Root(), "report.pdf"), path)

	resolved, err := store.Resolve("report.pdf")
	require.NoError(t, err)
	content, err := os.ReadFile(resolved)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))
}

func TestSaveOverwritesExisting(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("report.pdf", strings.NewReader("first"))
	require.NoError(t, err)
	path, err := store.Save("report.pdf", strings.NewReader("second"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestResolveRejectsEscape(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	// Plant a file just outside the upload area.
	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))

	for _, name := range []string{"../secret.txt", "..", "foo/../../secret.txt"} {
		_, err := store.Resolve(name)
		assert.ErrorIs(t, err, ErrNotFound, "name %q", name)
	}
}

func TestResolveUnknownName(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Resolve("missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveToleratesMissing(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(filepath.Join(store.Root(), "never-existed.pdf")))
	assert.NoError(t, store.Remove(""))

	path, err := store.Save("report.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
