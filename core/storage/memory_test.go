package storage_test

import (
	"context"
	"io"
	"testing"

	"blob-store/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient(t *testing.T) {
	ctx := context.Background()

	t.Run("WriteThenRead", func(t *testing.T) {
		client := storage.NewMemoryClient()

		w := client.NewWriter(ctx, storage.ObjectAttrs{Bucket: "b", Key: "k", Size: 5, ContentType: "text/plain"})
		_, err := w.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		rc, err := client.NewReader(ctx, "b", "k")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))

		attrs, err := client.StatObject(ctx, "b", "k")
		require.NoError(t, err)
		assert.Equal(t, int64(5), attrs.Size)
		assert.Equal(t, "text/plain", attrs.ContentType)
		assert.Empty(t, attrs.CacheControl)
	})

	t.Run("NotVisibleBeforeClose", func(t *testing.T) {
		client := storage.NewMemoryClient()

		w := client.NewWriter(ctx, storage.ObjectAttrs{Bucket: "b", Key: "k", Size: -1})
		_, err := w.Write([]byte("data"))
		require.NoError(t, err)

		_, err = client.NewReader(ctx, "b", "k")
		assert.True(t, client.IsNotExist(err))

		require.NoError(t, w.Close())
		_, err = client.NewReader(ctx, "b", "k")
		assert.NoError(t, err)
	})

	t.Run("ShortWriteIsNotCommitted", func(t *testing.T) {
		client := storage.NewMemoryClient()

		w := client.NewWriter(ctx, storage.ObjectAttrs{Bucket: "b", Key: "k", Size: 10})
		_, err := w.Write([]byte("abc"))
		require.NoError(t, err)
		assert.Error(t, w.Close())

		_, err = client.StatObject(ctx, "b", "k")
		assert.True(t, client.IsNotExist(err))
	})

	t.Run("Missing", func(t *testing.T) {
		client := storage.NewMemoryClient()

		_, err := client.NewReader(ctx, "b", "missing")
		assert.ErrorIs(t, err, storage.ErrNotExist)
		assert.True(t, client.IsNotExist(err))
		assert.False(t, client.IsNotExist(io.ErrUnexpectedEOF))
	})
}
