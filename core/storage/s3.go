package storage

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func newS3Client(ctx context.Context, cfg Config, provider CredentialsProvider) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	if endpoint == "" {
		endpoint = DefaultS3Endpoint
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	creds, err := s3Credentials(ctx, cfg, provider, transport)
	if err != nil {
		return nil, err
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     creds,
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}
	// The client connects lazily; transport timeouts bound connection setup.

	return &s3Client{client: minioClient}, nil
}

// s3Credentials resolves the credentials for the s3 driver. Without a
// provider the static keys from the config are tried first, then the usual
// AWS and MinIO environment variables, shared credential files and IAM.
func s3Credentials(ctx context.Context, cfg Config, provider CredentialsProvider, transport http.RoundTripper) (*credentials.Credentials, error) {
	if cfg.Anonymous {
		return credentials.New(&credentials.Static{Value: credentials.Value{SignerType: credentials.SignatureAnonymous}}), nil
	}

	if provider != nil {
		c, err := provider.Credentials(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve credentials")
		}
		if c.AccessKey == "" || c.SecretKey == "" {
			return nil, errors.New("credentials provider returned no access key")
		}
		return credentials.NewStaticV4(c.AccessKey, c.SecretKey, c.SessionToken), nil
	}

	var providers []credentials.Provider
	if cfg.AccessKey != "" {
		providers = append(providers, &credentials.Static{Value: credentials.Value{
			AccessKeyID:     cfg.AccessKey,
			SecretAccessKey: cfg.SecretKey,
			SessionToken:    cfg.SessionToken,
			SignerType:      credentials.SignatureV4,
		}})
	}
	providers = append(providers,
		&credentials.EnvAWS{},
		&credentials.EnvMinio{},
		&credentials.FileAWSCredentials{},
		&credentials.IAM{Client: &http.Client{Transport: transport}},
	)

	creds := credentials.NewChainCredentials(providers)
	v, err := creds.Get()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve credentials")
	}
	if v.SignerType.IsAnonymous() {
		return nil, errors.New("no credentials found; set storage access keys or enable anonymous access")
	}
	return creds, nil
}

type s3Client struct {
	client *minio.Client
}

func (c *s3Client) NewReader(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	return c.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
}

// NewWriter streams the written bytes into a single PutObject call. The
// declared size is passed along, so closing after a short write fails the
// upload instead of committing a truncated object.
func (c *s3Client) NewWriter(ctx context.Context, attrs ObjectAttrs) io.WriteCloser {
	opts := minio.PutObjectOptions{
		ContentType:  attrs.ContentType,
		CacheControl: attrs.CacheControl,
	}

	// An empty pipe body goes out chunked without a Content-Length, which
	// S3 rejects. Empty objects are put from an empty reader on Close.
	if attrs.Size == 0 {
		return &s3EmptyWriter{put: func() error {
			_, err := c.client.PutObject(ctx, attrs.Bucket, attrs.Key, bytes.NewReader(nil), 0, opts)
			return err
		}}
	}

	pr, pw := io.Pipe()
	w := &s3Writer{pw: pw, done: make(chan error, 1)}

	go func() {
		_, err := c.client.PutObject(ctx, attrs.Bucket, attrs.Key, pr, attrs.Size, opts)
		if err != nil {
			pr.CloseWithError(err)
		} else {
			pr.Close()
		}
		w.done <- err
	}()

	return w
}

func (c *s3Client) StatObject(ctx context.Context, bucket, key string) (ObjectAttrs, error) {
	info, err := c.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectAttrs{}, err
	}
	return ObjectAttrs{
		Bucket:       bucket,
		Key:          key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		CacheControl: info.Metadata.Get("Cache-Control"),
	}, nil
}

func (c *s3Client) IsNotExist(err error) bool {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}

func (c *s3Client) Close() error {
	return nil
}

type s3Writer struct {
	pw   *io.PipeWriter
	done chan error

	closeOnce sync.Once
	closeErr  error
}

func (w *s3Writer) Write(p []byte) (int, error) {
	// A zero-length pipe write blocks until the reader drains it.
	if len(p) == 0 {
		return 0, nil
	}
	return w.pw.Write(p)
}

func (w *s3Writer) Close() error {
	w.closeOnce.Do(func() {
		w.pw.Close()
		w.closeErr = <-w.done
	})
	return w.closeErr
}

type s3EmptyWriter struct {
	put func() error

	closeOnce sync.Once
	closeErr  error
	written   bool
}

func (w *s3EmptyWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.written = true
	return 0, errors.New("write to an object declared empty")
}

func (w *s3EmptyWriter) Close() error {
	w.closeOnce.Do(func() {
		if w.written {
			w.closeErr = errors.New("object declared empty but data was written")
			return
		}
		w.closeErr = w.put()
	})
	return w.closeErr
}
