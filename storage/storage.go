package storage

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jaipongz/site-backend/errs"
)

// URLPrefix is the public path uploaded assets are served back under.
const URLPrefix = "/uploads/"

// DefaultMaxUploadBytes is the upload size ceiling when none is configured.
const DefaultMaxUploadBytes int64 = 5 << 20 // 5 MiB

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var (
	uploadDir      = "uploads"
	maxUploadBytes = DefaultMaxUploadBytes
)

// Configure sets the on-disk upload root and the size ceiling. Zero or
// negative maxBytes keeps the default ceiling.
func Configure(dir string, maxBytes int64) {
	if dir != "" {
		uploadDir = dir
	}
	if maxBytes > 0 {
		maxUploadBytes = maxBytes
	}
}

// UploadDir returns the current on-disk upload root.
func UploadDir() string {
	return uploadDir
}

// MaxUploadBytes returns the configured size ceiling.
func MaxUploadBytes() int64 {
	return maxUploadBytes
}

// EnsureUploadDir creates the upload root if it doesn't exist.
func EnsureUploadDir() error {
	return os.MkdirAll(uploadDir, 0o755)
}

// SaveUpload validates and persists one uploaded file and returns the relative
// URL path (/uploads/<name>) to store in the record's image field. Validation
// happens before any disk write, so a rejected upload leaves no file behind.
func SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadBytes {
		return "", errs.NewMaxBodySizeExceededError(maxUploadBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to open uploaded file", err)
	}
	defer file.Close()

	// Sniff the real content type instead of trusting the part header.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", errs.NewInternalErrorWithCause("failed to read uploaded file", err)
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.NewUnsupportedMediaTypeError(contentType, allowedImageTypes)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", errs.NewInternalErrorWithCause("failed to rewind uploaded file", err)
	}

	name := uuid.New().String() + normalizedExt(fileHeader.Filename)
	destPath := filepath.Join(uploadDir, name)

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to create upload file", err)
	}

	if _, err := io.Copy(dest, file); err != nil {
		dest.Close()
		os.Remove(destPath)
		return "", errs.NewInternalErrorWithCause("failed to write upload file", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return "", errs.NewInternalErrorWithCause("failed to finish upload file", err)
	}

	return URLPrefix + name, nil
}

// Remove deletes a previously stored upload given its /uploads/<name> path.
// Paths outside the upload namespace are ignored.
func Remove(urlPath string) error {
	if !strings.HasPrefix(urlPath, URLPrefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(urlPath, URLPrefix))
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(uploadDir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func normalizedExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
