// Package kvstore is the key-value store with per-key expiry that backs
// session revocation. Backends never retry; transport failures are reported
// wrapping common.ErrStoreUnavailable so callers can fail closed.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
)

// ErrInvalidTTL is returned by Put when ttl is not positive.
var ErrInvalidTTL = errors.New("ttl must be positive")

// Store is implemented by every backend.
type Store interface {
	// Put writes value under key, replacing any previous value, and expires it after ttl.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns common.ErrorNotFound for absent or expired keys.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteIfExists removes key and reports whether it was present. Of two
	// concurrent calls for the same key at most one observes true.
	DeleteIfExists(ctx context.Context, key string) (bool, error)

	// DeleteByPrefix removes every key starting with prefix and returns how
	// many were removed.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrStoreUnavailable, op, err)
}

// Clock returns the current time. Backends that evaluate expiry themselves
// accept one so tests can move time.
type Clock func() time.Time
