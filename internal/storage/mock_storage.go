package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MockStorageService implements image storage using the local filesystem.
// This is for development and testing without a Cloud Storage bucket.
type MockStorageService struct {
	baseURL   string // Server URL (e.g., "http://localhost:8080")
	imagesDir string // Local directory for uploaded images
}

// NewMockStorageService creates a new mock storage service
func NewMockStorageService(baseURL, uploadsDir string) (*MockStorageService, error) {
	imagesDir := filepath.Join(uploadsDir, "images")

	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	return &MockStorageService{
		baseURL:   baseURL,
		imagesDir: imagesDir,
	}, nil
}

func (m *MockStorageService) Upload(ctx context.Context, key, contentType string, data []byte) error {
	path, err := m.safePath(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save file %s: %w", key, err)
	}
	return nil
}

// PublicURL points at the server's own download route so mock uploads are
// reachable the same way bucket objects are.
func (m *MockStorageService) PublicURL(key string) string {
	return fmt.Sprintf("%s/api/v1/images/%s", m.baseURL, url.PathEscape(key))
}

func (m *MockStorageService) KeyFromURL(rawURL string) (string, bool) {
	prefix := m.baseURL + "/api/v1/images/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimPrefix(rawURL, prefix))
	if err != nil {
		return "", false
	}
	return key, true
}

func (m *MockStorageService) Delete(ctx context.Context, key string) error {
	path, err := m.safePath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}

func (m *MockStorageService) List(ctx context.Context) ([]Object, error) {
	entries, err := os.ReadDir(m.imagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list images directory: %w", err)
	}

	var objects []Object
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, Object{
			Key:     entry.Name(),
			Size:    info.Size(),
			Created: info.ModTime(),
		})
	}
	return objects, nil
}

func (m *MockStorageService) ReadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := m.safePath(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// safePath resolves a key inside the images directory, rejecting traversal.
func (m *MockStorageService) safePath(key string) (string, error) {
	cleaned := filepath.Base(filepath.Clean(key))
	if cleaned == "." || cleaned == ".." || cleaned == string(filepath.Separator) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return filepath.Join(m.imagesDir, cleaned), nil
}

// ContentTypeForKey maps a stored key's extension onto a MIME type for the
// mock download handler.
func ContentTypeForKey(key string) string {
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// ImageKey derives a collision-resistant storage key for a machine image
// from the upload instant, preserving the original file extension.
func ImageKey(now time.Time, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("machine_%d%s", now.UnixMilli(), ext)
}
