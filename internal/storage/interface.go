package storage

import (
	"context"
	"io"
	"time"
)

// Object describes a stored image for inventory scans.
type Object struct {
	Key     string
	Size    int64
	Created time.Time
}

// StorageInterface defines the interface for image storage backends.
// Supports both mock (local filesystem) and Cloud Storage for Firebase.
type StorageInterface interface {
	// Upload writes the image bytes under the given key. The key must be
	// collision-resistant; callers derive it from the current time.
	Upload(ctx context.Context, key, contentType string, data []byte) error

	// PublicURL resolves the publicly reachable URL for an uploaded key.
	PublicURL(key string) string

	// KeyFromURL inverts PublicURL; returns false for foreign URLs.
	KeyFromURL(url string) (string, bool)

	// Delete removes an object from storage.
	Delete(ctx context.Context, key string) error

	// List enumerates all stored objects (used by the orphan sweep job).
	List(ctx context.Context) ([]Object, error)

	// ReadFile opens a stored object for reading. Only the mock backend's
	// HTTP download handler needs this.
	ReadFile(ctx context.Context, key string) (io.ReadCloser, error)
}
