// Package storage holds the object storage backends: Google Cloud Storage and a
// local directory served over HTTP for development.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage writes objects under root/<bucket>/<objectPath>.
type LocalStorage struct {
	root          string
	publicBaseURL string
}

func NewLocalStorage(root, publicBaseURL string) (*LocalStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("local storage root cannot be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	return &LocalStorage{root: root, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if bucket == "" || bucket == "." || bucket == ".." || strings.ContainsAny(bucket, `/\`) {
		return "", fmt.Errorf("invalid bucket %q", bucket)
	}
	obj := strings.TrimPrefix(path.Clean("/"+objectPath), "/")
	if obj == "" {
		return "", fmt.Errorf("invalid object path %q", objectPath)
	}
	target := filepath.Join(s.root, bucket, filepath.FromSlash(obj))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s/%s: %w", bucket, obj, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s/%s: %w", bucket, obj, err)
	}

	return PublicURL(s.publicBaseURL, bucket, obj), nil
}

// PublicURL joins base, bucket and object path.
func PublicURL(base, bucket, objectPath string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.TrimLeft(objectPath, "/")
}
