package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// FirebaseStorageService implements image storage on Cloud Storage for
// Firebase. Uploaded objects are publicly readable so the stored URL can be
// rendered directly by clients.
type FirebaseStorageService struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewFirebaseStorageService creates a storage service over the project's
// default bucket.
func NewFirebaseStorageService(bucket *gcs.BucketHandle, bucketName string) *FirebaseStorageService {
	return &FirebaseStorageService{
		bucket:     bucket,
		bucketName: bucketName,
	}
}

func (s *FirebaseStorageService) Upload(ctx context.Context, key, contentType string, data []byte) error {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.PredefinedACL = "publicRead"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", key, err)
	}
	return nil
}

func (s *FirebaseStorageService) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key)
}

func (s *FirebaseStorageService) KeyFromURL(url string) (string, bool) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucketName)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func (s *FirebaseStorageService) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *FirebaseStorageService) List(ctx context.Context) ([]Object, error) {
	it := s.bucket.Objects(ctx, nil)

	var objects []Object
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket objects: %w", err)
		}
		objects = append(objects, Object{
			Key:     attrs.Name,
			Size:    attrs.Size,
			Created: attrs.Created,
		})
	}
	return objects, nil
}

func (s *FirebaseStorageService) ReadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.bucket.Object(key).NewReader(ctx)
}
