package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
)

type timeoutStore struct {
	next    Store
	timeout time.Duration
}

// WithTimeout bounds every call to next by d. A call that runs out of time is
// reported as common.ErrStoreUnavailable. A non-positive d returns next as is.
func WithTimeout(next Store, d time.Duration) Store {
	if d <= 0 {
		return next
	}
	return &timeoutStore{next: next, timeout: d}
}

func (t *timeoutStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, t.timeout)
}

// check turns a deadline hit into ErrStoreUnavailable. Errors that already
// carry a meaning for the caller are passed through.
func check(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrStoreUnavailable) || errors.Is(err, common.ErrorNotFound) || errors.Is(err, ErrInvalidTTL) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return err
}

func (t *timeoutStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	return check(ctx, t.next.Put(ctx, key, value, ttl))
}

func (t *timeoutStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	v, err := t.next.Get(ctx, key)
	return v, check(ctx, err)
}

func (t *timeoutStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	return check(ctx, t.next.Delete(ctx, key))
}

func (t *timeoutStore) DeleteIfExists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	ok, err := t.next.DeleteIfExists(ctx, key)
	return ok, check(ctx, err)
}

func (t *timeoutStore) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	n, err := t.next.DeleteByPrefix(ctx, prefix)
	return n, check(ctx, err)
}
