package kvstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/go-redis/redis/v8"
)

const scanBatch = 500

// RedisStore is the production backend. Expiry is native (SET ... PX).
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore wraps an already constructed client; the caller owns its lifecycle.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return unavailable("set", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, unavailable("get", err)
	}
	return data, nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return unavailable("del", err)
	}
	return nil
}

// DeleteIfExists relies on DEL reporting how many keys it removed; a single
// key DEL is atomic on the server.
func (r *RedisStore) DeleteIfExists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, unavailable("del", err)
	}
	return n > 0, nil
}

// DeleteByPrefix collects the matching keys with SCAN, then deletes them in
// batches of scanBatch. Keys written under the prefix after the walk may survive.
func (r *RedisStore) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	pattern := escapeGlob(prefix) + "*"

	seen := make(map[string]struct{})
	var (
		keys   []string
		cursor uint64
	)
	for {
		page, next, err := r.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return 0, unavailable("scan", err)
		}
		// SCAN may return a key more than once
		for _, k := range page {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	removed := 0
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		n, err := r.client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			return removed, unavailable("del", err)
		}
		removed += int(n)
	}
	return removed, nil
}

// escapeGlob quotes the characters that are special in a Redis MATCH pattern.
func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
