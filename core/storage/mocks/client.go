package mocks

import (
	"context"
	"io"

	"blob-store/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) NewReader(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, key)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) NewWriter(ctx context.Context, attrs storage.ObjectAttrs) io.WriteCloser {
	args := m.Called(ctx, attrs)
	return args.Get(0).(io.WriteCloser)
}

func (m *Client) StatObject(ctx context.Context, bucket, key string) (storage.ObjectAttrs, error) {
	args := m.Called(ctx, bucket, key)
	return args.Get(0).(storage.ObjectAttrs), args.Error(1)
}

func (m *Client) IsNotExist(err error) bool {
	args := m.Called(err)
	return args.Bool(0)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Writer is an io.WriteCloser that records what happened to it.
type Writer struct {
	// Err is returned from Write when set.
	Err error
	// CloseErr is returned from Close.
	CloseErr error

	Data   []byte
	Closes int
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	w.Data = append(w.Data, p...)
	return len(p), nil
}

func (w *Writer) Close() error {
	w.Closes++
	return w.CloseErr
}
