package storage

// Supported values for Config.Driver.
const (
	DriverS3     = "s3"
	DriverGCS    = "gcs"
	DriverMemory = "memory"
)

// DefaultS3Endpoint is used by the s3 driver when Config.Endpoint is empty.
const DefaultS3Endpoint = "localhost:9000"

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the backend: s3 (MinIO or any S3 endpoint), gcs or memory.
	Driver string `mapstructure:"driver" default:"s3"`
	// Endpoint is the URL of the storage service. Empty means the driver
	// default: DefaultS3Endpoint for s3, Google Cloud Storage for gcs.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// SessionToken is an optional session token for temporary credentials.
	SessionToken string `mapstructure:"session_token" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// Bucket is the bucket used by the CLI when only a key is given.
	Bucket string `mapstructure:"bucket" default:"blobs"`
	// CredentialsFile is a service account key file for the gcs driver.
	CredentialsFile string `mapstructure:"credentials_file" default:""`
	// Anonymous allows unauthenticated access (public buckets, emulators).
	Anonymous bool `mapstructure:"anonymous" default:"false"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
