// Package storage archives catalogued files to an S3-compatible object store.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions describe one upload. Size is the exact byte count, or -1
// when unknown and the backend should stream in parts.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the store reports back for a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// Storage is the object store used for document archives.
type Storage interface {
	// Put uploads an object under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL. The download is offered
	// under the key's base name.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
