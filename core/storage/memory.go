package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
)

// MemoryClient is an in-process Client. Objects become visible when their
// writer is closed. It is safe for concurrent use.
type MemoryClient struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data  []byte
	attrs ObjectAttrs
}

// NewMemoryClient returns an empty MemoryClient.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{objects: make(map[string]memoryObject)}
}

func memoryKey(bucket, key string) string {
	return bucket + "/" + key
}

func (c *MemoryClient) lookup(bucket, key string) (memoryObject, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	obj, ok := c.objects[memoryKey(bucket, key)]
	if !ok {
		return memoryObject{}, errors.Wrapf(ErrNotExist, "%s/%s", bucket, key)
	}
	return obj, nil
}

func (c *MemoryClient) NewReader(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := c.lookup(bucket, key)
	if err != nil {
		return nil, err
	}
	// Committed data is never modified in place, so readers can share it.
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (c *MemoryClient) NewWriter(_ context.Context, attrs ObjectAttrs) io.WriteCloser {
	return &memoryWriter{client: c, attrs: attrs}
}

func (c *MemoryClient) StatObject(_ context.Context, bucket, key string) (ObjectAttrs, error) {
	obj, err := c.lookup(bucket, key)
	if err != nil {
		return ObjectAttrs{}, err
	}
	return obj.attrs, nil
}

func (c *MemoryClient) IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

func (c *MemoryClient) Close() error {
	return nil
}

func (c *MemoryClient) commit(attrs ObjectAttrs, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects[memoryKey(attrs.Bucket, attrs.Key)] = memoryObject{data: data, attrs: attrs}
}

type memoryWriter struct {
	client *MemoryClient
	attrs  ObjectAttrs
	buf    bytes.Buffer
	closed bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errors.New("write to closed writer")
	}
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	size := int64(w.buf.Len())
	if w.attrs.Size >= 0 && size != w.attrs.Size {
		return errors.Newf("wrote %d bytes to %s/%s, declared %d", size, w.attrs.Bucket, w.attrs.Key, w.attrs.Size)
	}

	attrs := w.attrs
	attrs.Size = size
	if attrs.ContentType == "" {
		attrs.ContentType = "application/octet-stream"
	}
	w.client.commit(attrs, bytes.Clone(w.buf.Bytes()))
	return nil
}
