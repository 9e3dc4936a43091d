// Package storage persists uploaded assets (profile images) in an
// object store and resolves the public URLs they are served under.
package storage

import (
	"context"
	"io"
	"strings"
)

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// Storage wraps an ObjectStorage backend and knows the externally
// reachable base URL assets are served under.
type Storage struct {
	backend ObjectStorage
	baseURL string
}

// NewStorage constructs a Storage wrapper for the provided backend.
func NewStorage(backend ObjectStorage, publicBaseURL string) *Storage {
	return &Storage{
		backend: backend,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// EnsureBucket ensures the configured bucket exists.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

// Put uploads an asset and returns the public URL it will be served under.
func (s *Storage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if err := s.backend.Put(ctx, key, r, size, contentType); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// Get opens a reader for an asset in the configured bucket.
func (s *Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.backend.Get(ctx, key)
}

// Delete removes an asset from the configured bucket.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// PublicURL resolves the externally reachable URL for a stored asset.
func (s *Storage) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// Bucket returns the configured bucket name.
func (s *Storage) Bucket() string {
	return s.backend.Bucket()
}
