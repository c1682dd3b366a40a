// Package objectstore describes the store holding uploaded media. Objects
// are addressed by key and served publicly through a CDN base URL.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"travel/pkg/serrors"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when no bucket or CDN base URL is configured.
var ErrNotConfigured = serrors.With(serrors.ErrUnavailable, "object storage is not configured")

// Object is a stored upload.
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Store persists uploaded media.
type Store interface {
	// Upload stores body under a fresh key inside folder. The key extension
	// follows contentType; name is kept as metadata only.
	Upload(ctx context.Context, folder, name, contentType string, body io.Reader, size int64) (*Object, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

//nolint: gochecknoglobals
var imageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
}

// sniffLen is the prefix inspected by http.DetectContentType.
const sniffLen = 512

// Sniff detects the content type of an upload from its first bytes and
// rewinds r. The client supplied content type is never trusted.
func Sniff(r io.ReadSeeker) (string, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("could not read upload head: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("could not rewind upload: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}

// CheckImage validates an image upload against the allowed content types
// and maxSize.
func CheckImage(contentType string, size, maxSize int64) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "file type is not allowed")
	}
	if _, ok := imageTypes[mediaType]; !ok {
		return serrors.With(serrors.ErrBadRequest, "file type is not allowed")
	}
	if size <= 0 {
		return serrors.With(serrors.ErrBadRequest, "file is empty")
	}
	if maxSize > 0 && size > maxSize {
		return serrors.With(serrors.ErrBadRequest, "file must be at most %d MB", maxSize>>20)
	}

	return nil
}

// Key builds the object key for an upload: <folder>/<uuid><ext>. The folder
// is reduced to lower-case letters, digits and hyphens; the extension comes
// from the content type alone.
func Key(folder, contentType string) string {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	return cleanFolder(folder) + "/" + uuid.NewString() + imageTypes[mediaType]
}

func cleanFolder(folder string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(folder) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == '/' || r == '_' || r == ' ':
			b.WriteByte('-')
		}
	}

	clean := strings.Trim(b.String(), "-")
	if clean == "" {
		return "uploads"
	}

	return clean
}

// URL joins a CDN base URL and an object key.
func URL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
