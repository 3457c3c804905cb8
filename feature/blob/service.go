package blob

import (
	"context"
	"io"
	"io/fs"
	"os"

	"blob-store/core/storage"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Options configures Open.
type Options struct {
	// Storage selects and configures the backend.
	Storage storage.Config
	// Credentials overrides the backend's default credentials resolution.
	Credentials storage.CredentialsProvider
	// Logger receives write failures and debug traces. Nil discards them.
	Logger *zap.Logger
}

// Service reads and writes blobs through a storage client. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	client storage.Client
	logger *zap.Logger
}

// Open builds the storage client described by opts and returns a Service
// owning it. Failures are marked ErrConfiguration.
func Open(ctx context.Context, opts Options) (*Service, error) {
	client, err := storage.NewClient(ctx, opts.Storage, opts.Credentials)
	if err != nil {
		return nil, errors.Mark(err, ErrConfiguration)
	}
	return NewService(client, opts.Logger), nil
}

// NewService creates a Service around an existing client.
func NewService(client storage.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Close releases the storage client.
func (s *Service) Close() error {
	return s.client.Close()
}

// ReadObjectFromPath opens the object named by a path such as
// "gs://bucket/dir/object". See ParseLocation.
func (s *Service) ReadObjectFromPath(ctx context.Context, path string) (io.ReadCloser, error) {
	loc, err := ParseLocation(path)
	if err != nil {
		return nil, err
	}
	return s.ReadObject(ctx, loc.Bucket, loc.Key)
}

// ReadObject opens a fresh reader on an object. A missing object is reported
// as ErrNotFound either here or on the first Read, depending on the backend.
// The caller must close the reader.
func (s *Service) ReadObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	rc, err := s.client.NewReader(ctx, bucket, key)
	if err != nil {
		return nil, s.classify(err)
	}
	return &objectReader{ReadCloser: rc, classify: s.classify}, nil
}

// StatObject returns the attributes of an object.
func (s *Service) StatObject(ctx context.Context, bucket, key string) (storage.ObjectAttrs, error) {
	attrs, err := s.client.StatObject(ctx, bucket, key)
	if err != nil {
		return storage.ObjectAttrs{}, s.classify(err)
	}
	return attrs, nil
}

// UploadObject writes the local file at filePath to bucket/key.
func (s *Service) UploadObject(ctx context.Context, bucket, key, filePath string, opts ...WriteOption) error {
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Mark(err, ErrFileNotFound)
		}
		return errors.Mark(err, ErrIO)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Mark(err, ErrIO)
	}
	if info.IsDir() {
		return errors.Mark(errors.Newf("%s is a directory", filePath), ErrIO)
	}

	return s.WriteBlob(ctx, bucket, key, f, info.Size(), opts...)
}

// WriteBlob creates or replaces bucket/key with the first contentLength bytes
// of content. The whole of content is read into memory before anything is
// sent, so it must fit in memory. Content shorter than contentLength is
// rejected with ErrInvalidArgument. Failures while writing are logged and
// returned marked ErrWriteFailed.
func (s *Service) WriteBlob(ctx context.Context, bucket, key string, content io.Reader, contentLength int64, opts ...WriteOption) error {
	s.logger.Debug("writeBlob",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int64("content_length", contentLength),
	)

	if contentLength < 0 {
		return invalidArgumentf("negative content length %d for %s/%s", contentLength, bucket, key)
	}

	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	buf, err := io.ReadAll(content)
	if err != nil {
		s.logger.Error("Failed to buffer blob content",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Error(err),
		)
		return errors.Mark(err, ErrWriteFailed)
	}
	if int64(len(buf)) < contentLength {
		return invalidArgumentf("content for %s/%s has %d bytes, declared %d", bucket, key, len(buf), contentLength)
	}

	attrs := storage.ObjectAttrs{
		Bucket: bucket,
		Key:    key,
		Size:   contentLength,
	}
	if o.hasContentType {
		attrs.ContentType = o.contentType
	}
	if o.cacheControl {
		attrs.CacheControl = CacheControlPublic
	}

	return s.write(ctx, attrs, buf[:contentLength])
}

// write sends data through a single writer which is closed on every path.
// A write error takes precedence over the close error that usually follows it.
func (s *Service) write(ctx context.Context, attrs storage.ObjectAttrs, data []byte) (err error) {
	w := s.client.NewWriter(ctx, attrs)
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = s.writeFailed(attrs, closeErr)
		}
	}()

	if _, err := w.Write(data); err != nil {
		return s.writeFailed(attrs, err)
	}
	return nil
}

func (s *Service) writeFailed(attrs storage.ObjectAttrs, err error) error {
	s.logger.Error("Failed to write blob",
		zap.String("bucket", attrs.Bucket),
		zap.String("key", attrs.Key),
		zap.Error(err),
	)
	return errors.Mark(err, ErrWriteFailed)
}

func (s *Service) classify(err error) error {
	if s.client.IsNotExist(err) {
		return errors.Mark(err, ErrNotFound)
	}
	return errors.Mark(err, ErrStorageUnavailable)
}

// objectReader classifies errors surfacing on Read, where backends that open
// objects lazily report a missing object.
type objectReader struct {
	io.ReadCloser
	classify func(error) error
}

func (r *objectReader) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if err != nil && err != io.EOF {
		err = r.classify(err)
	}
	return n, err
}
