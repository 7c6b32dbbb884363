package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrLockHeld is returned when another holder owns the lease.
var ErrLockHeld = errors.New("lease held by another holder")

// LinkLocker grants short keyed leases so a card's first link runs once.
type LinkLocker interface {
	// Acquire takes the lease for key. The returned release func is safe
	// to call more than once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
