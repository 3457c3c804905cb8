package storage

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
)

// ErrNotExist is returned by the memory driver for missing objects.
var ErrNotExist = errors.New("object does not exist")

// ObjectAttrs describes an object to be written or one that was looked up.
type ObjectAttrs struct {
	Bucket string
	Key    string
	// Size is the exact number of bytes to be written, or -1 if unknown.
	Size int64
	// ContentType is left to the backend default when empty.
	ContentType string
	// CacheControl is not set on the object when empty.
	CacheControl string
}

// Client defines the slice of object storage operations the blob store relies on.
type Client interface {
	// NewReader opens a reader for an object. Depending on the driver a missing
	// object is reported here or on the first Read.
	NewReader(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	// NewWriter opens a writer that creates or replaces the object described
	// by attrs. The object is committed by Close, which must always be called.
	NewWriter(ctx context.Context, attrs ObjectAttrs) io.WriteCloser
	// StatObject returns the attributes of an existing object.
	StatObject(ctx context.Context, bucket, key string) (ObjectAttrs, error)
	// IsNotExist reports whether err means the object or bucket is missing.
	IsNotExist(err error) bool
	// Close releases the underlying connections.
	Close() error
}

// NewClient creates a storage client for the configured driver. A nil
// provider selects the driver's default credentials resolution.
func NewClient(ctx context.Context, cfg Config, provider CredentialsProvider) (Client, error) {
	switch cfg.Driver {
	case DriverS3, "":
		return newS3Client(ctx, cfg, provider)
	case DriverGCS:
		return newGCSClient(ctx, cfg, provider)
	case DriverMemory:
		return NewMemoryClient(), nil
	default:
		return nil, errors.Newf("unknown storage driver %q", cfg.Driver)
	}
}
