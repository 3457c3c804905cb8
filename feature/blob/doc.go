// Package blob provides simplified read and write access to objects in a
// bucket-based storage service.
//
// A Service wraps one storage.Client for its whole lifetime. Reads return a
// lazily consumed stream; writes buffer the full input in memory and send
// exactly the declared number of bytes through one writer, optionally
// setting the content type and a fixed Cache-Control of
// "max-age=3600, public".
//
// # Operations
//
//   - ReadObjectFromPath: read "scheme://bucket/key" style paths.
//   - ReadObject: read by bucket and key.
//   - StatObject: look up size and metadata.
//   - UploadObject: write a local file.
//   - WriteBlob: write a byte stream of known length.
//
// Nothing is retried. Errors carry one of the Err* classes; see errors.go.
//
// # HTTP Endpoints
//
//   - GET /objects?path=gs://bucket/key : read by path.
//   - GET /objects/:bucket/* : read an object.
//   - HEAD /objects/:bucket/* : object headers only.
//   - PUT /objects/:bucket/* : write the request body (supports ?cache=true).
//
// # Usage
//
//	svc, err := blob.Open(ctx, blob.Options{Storage: cfg.Storage, Logger: log})
//	err = svc.UploadObject(ctx, "assets", "img/logo.png", "./logo.png",
//	    blob.WithContentType("image/png"), blob.WithCacheControl(true))
package blob
