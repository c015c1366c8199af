package minio

import (
	"context"
	"io"
)

// Store adapts the package-level client to the object-store interface
// consumed by services and the thumbnail generator.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return UploadFile(ctx, objectName, reader, size, contentType)
}

func (s *Store) Delete(ctx context.Context, objectName string) error {
	return DeleteFile(ctx, objectName)
}

func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return ListFiles(ctx, prefix)
}

func (s *Store) PublicURL(objectName string) string {
	return GetPublicURL(objectName)
}
