package lock

import (
	"context"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
)

// NoopLocker always grants the lock. Used when Redis is not configured.
type NoopLocker struct{}

var _ gateways.Locker = NoopLocker{}

func (NoopLocker) Obtain(context.Context, string, time.Duration) (gateways.Releaser, error) {
	return noopReleaser{}, nil
}

type noopReleaser struct{}

func (noopReleaser) Release(context.Context) error { return nil }
