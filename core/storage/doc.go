// Package storage provides an abstraction layer for object storage services.
//
// It narrows the cloud SDKs down to the handful of calls the blob store needs:
// opening a reader, opening a scoped writer, looking up object attributes and
// recognising "does not exist" errors.
//
// # Drivers
//
//   - s3: MinIO Go client, for MinIO and any S3-compatible endpoint.
//   - gcs: Google Cloud Storage client.
//   - memory: in-process store for local runs and tests.
//
// # Credentials
//
// NewClient accepts an optional CredentialsProvider. When it is nil the s3
// driver walks the config keys, AWS/MinIO environment variables, shared
// credential files and IAM; the gcs driver uses a configured key file or
// Application Default Credentials.
//
// # Usage
//
//	client, err := storage.NewClient(ctx, cfg.Storage, nil)
//	rc, err := client.NewReader(ctx, "assets", "images/logo.png")
package storage
