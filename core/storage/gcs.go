package storage

import (
	"context"
	"io"

	gcs "cloud.google.com/go/storage"
	"github.com/cockroachdb/errors"
	"google.golang.org/api/option"
)

func newGCSClient(ctx context.Context, cfg Config, provider CredentialsProvider) (Client, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	switch {
	case cfg.Anonymous:
		opts = append(opts, option.WithoutAuthentication())
	case provider != nil:
		c, err := provider.Credentials(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve credentials")
		}
		if len(c.JSON) == 0 {
			return nil, errors.New("credentials provider returned no service account JSON")
		}
		opts = append(opts, option.WithCredentialsJSON(c.JSON))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	// With none of the above the client falls back to Application Default Credentials.

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gcs client")
	}
	return &gcsClient{client: client}, nil
}

type gcsClient struct {
	client *gcs.Client
}

func (c *gcsClient) NewReader(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	return c.client.Bucket(bucket).Object(key).NewReader(ctx)
}

func (c *gcsClient) NewWriter(ctx context.Context, attrs ObjectAttrs) io.WriteCloser {
	w := c.client.Bucket(attrs.Bucket).Object(attrs.Key).NewWriter(ctx)
	w.ContentType = attrs.ContentType
	w.CacheControl = attrs.CacheControl
	return w
}

func (c *gcsClient) StatObject(ctx context.Context, bucket, key string) (ObjectAttrs, error) {
	attrs, err := c.client.Bucket(bucket).Object(key).Attrs(ctx)
	if err != nil {
		return ObjectAttrs{}, err
	}
	return ObjectAttrs{
		Bucket:       bucket,
		Key:          key,
		Size:         attrs.Size,
		ContentType:  attrs.ContentType,
		CacheControl: attrs.CacheControl,
	}, nil
}

func (c *gcsClient) IsNotExist(err error) bool {
	return errors.Is(err, gcs.ErrObjectNotExist) || errors.Is(err, gcs.ErrBucketNotExist)
}

func (c *gcsClient) Close() error {
	return c.client.Close()
}
