package storage

import "context"

// Credentials is the authentication material handed to a driver. The s3
// driver uses the key pair, the gcs driver the service account JSON.
type Credentials struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	JSON         []byte
}

// CredentialsProvider produces credentials when a client is built.
type CredentialsProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticCredentials is a CredentialsProvider returning fixed values.
type StaticCredentials Credentials

// Credentials implements CredentialsProvider.
func (s StaticCredentials) Credentials(context.Context) (Credentials, error) {
	return Credentials(s), nil
}
