// Package gateways declares the outbound ports for collaborators outside the database:
// object storage, email transport, PDF rendering and distributed locking.
package gateways

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
)

// ObjectStorage stores binary objects and returns a URL clients can open.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error)
}

// Email is one outbound message.
type Email struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers email.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// PDFRenderer produces the PDF bytes for issued documents.
type PDFRenderer interface {
	RenderInvoice(ctx context.Context, doc domain.InvoiceDocument) ([]byte, error)
	RenderCertificate(ctx context.Context, doc domain.CertificateDocument) ([]byte, error)
}

// ErrLockNotObtained is returned by a Locker when another holder owns the key.
var ErrLockNotObtained = errors.New("lock not obtained")

// Releaser gives up a lock obtained from a Locker.
type Releaser interface {
	Release(ctx context.Context) error
}

// Locker serialises work on a key across processes.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (Releaser, error)
}

// Provider bundles the gateway implementations chosen at startup.
type Provider struct {
	Storage  ObjectStorage
	Mailer   Mailer
	Renderer PDFRenderer
	Locker   Locker
}
