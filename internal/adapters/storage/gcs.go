package storage

import (
	"context"
	"fmt"
	"strings"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSStorage uploads objects to Google Cloud Storage.
type GCSStorage struct {
	client        *gcs.Client
	publicBaseURL string
}

// NewGCSStorage builds a client from explicit service-account JSON, or from
// application default credentials when credentialsJSON is empty.
func NewGCSStorage(ctx context.Context, credentialsJSON, publicBaseURL string) (*GCSStorage, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		creds, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), gcs.ScopeReadWrite)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GCS credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	if publicBaseURL == "" {
		publicBaseURL = gcsPublicHost
	}
	return &GCSStorage{client: client, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

// Upload writes data to bucket/objectPath and returns its public URL.
func (s *GCSStorage) Upload(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error) {
	objectPath = strings.TrimLeft(objectPath, "/")

	wc := s.client.Bucket(bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "private, max-age=0"

	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("failed to upload %s/%s: %w", bucket, objectPath, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload %s/%s: %w", bucket, objectPath, err)
	}

	return PublicURL(s.publicBaseURL, bucket, objectPath), nil
}

// Close releases the underlying client.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
