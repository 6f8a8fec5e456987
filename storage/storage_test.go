package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaipongz/site-backend/errs"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func makeFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File[field][0]
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestSaveUpload_StoresImage(t *testing.T) {
	dir := t.TempDir()
	Configure(dir, DefaultMaxUploadBytes)

	fh := makeFileHeader(t, "thumbnail", "Photo.PNG", pngHeader)

	urlPath, err := SaveUpload(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(urlPath, URLPrefix), "path %q should live under %s", urlPath, URLPrefix)
	assert.True(t, strings.HasSuffix(urlPath, ".png"), "extension should be normalized to lower case")

	name := strings.TrimPrefix(urlPath, URLPrefix)
	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestSaveUpload_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	Configure(dir, DefaultMaxUploadBytes)

	first, err := SaveUpload(makeFileHeader(t, "thumbnail", "a.png", pngHeader))
	require.NoError(t, err)
	second, err := SaveUpload(makeFileHeader(t, "thumbnail", "a.png", pngHeader))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, dirEntries(t, dir), 2)
}

func TestSaveUpload_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	Configure(dir, DefaultMaxUploadBytes)

	fh := makeFileHeader(t, "thumbnail", "notes.txt", []byte("plain text, not an image"))

	_, err := SaveUpload(fh)
	require.Error(t, err)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 415, apiErr.StatusCode)

	// A rejected upload must leave nothing on disk.
	assert.Empty(t, dirEntries(t, dir))
}

func TestSaveUpload_RejectsOversize(t *testing.T) {
	dir := t.TempDir()
	Configure(dir, 8)

	fh := makeFileHeader(t, "thumbnail", "big.png", pngHeader)

	_, err := SaveUpload(fh)
	require.Error(t, err)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 413, apiErr.StatusCode)
	assert.Empty(t, dirEntries(t, dir))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	Configure(dir, DefaultMaxUploadBytes)

	urlPath, err := SaveUpload(makeFileHeader(t, "thumbnail", "a.png", pngHeader))
	require.NoError(t, err)

	require.NoError(t, Remove(urlPath))
	assert.Empty(t, dirEntries(t, dir))

	// Idempotent, and paths outside the namespace are ignored.
	require.NoError(t, Remove(urlPath))
	require.NoError(t, Remove("https://example.com/image.png"))
}

func TestNormalizedExt(t *testing.T) {
	assert.Equal(t, ".png", normalizedExt("photo.PNG"))
	assert.Equal(t, ".jpg", normalizedExt("a.b.jpg"))
	assert.Equal(t, "", normalizedExt("noext"))
	assert.Equal(t, "", normalizedExt("weird.p~g"))
}
