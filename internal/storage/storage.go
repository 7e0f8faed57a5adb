package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations. The upload
// service never touches the filesystem directly, which keeps the resolver
// testable against a temp directory.
type Storage interface {
	// Save stores a file at the given path, creating parent directories.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path; missing files are not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetSize returns the size of a file in bytes.
	GetSize(ctx context.Context, path string) (int64, error)
}
