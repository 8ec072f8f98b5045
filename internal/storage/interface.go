package storage

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks ceslar/internal/storage Storage

// Storage defines the object storage operations used for church media.
type Storage interface {
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// GetPresignedPutURL generates a pre-signed URL for uploading an object.
	GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// DeleteObject removes an object. Missing objects are not an error.
	DeleteObject(ctx context.Context, key string) error
}

var _ Storage = (*S3Client)(nil)
