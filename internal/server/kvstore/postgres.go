package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
)

// PostgresStore keeps entries in the kv_entries table. Expired rows are
// invisible to reads and removed by DeleteExpired.
type PostgresStore struct {
	db  dbx.DBTX
	now Clock
}

func NewPostgresStore(db dbx.DBTX, now Clock) *PostgresStore {
	if now == nil {
		now = time.Now
	}
	return &PostgresStore{db: db, now: now}
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	query :=
		`INSERT INTO kv_entries (key, value, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`

	if _, err := s.db.ExecContext(ctx, query, key, value, s.now().Add(ttl)); err != nil {
		return unavailable("put", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_entries WHERE key = $1 AND expires_at > $2`

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key, s.now()).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, unavailable("get", err)
	}
	return value, nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE key = $1`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return unavailable("delete", err)
	}
	return nil
}

// DeleteIfExists is a single DELETE; the row lock makes concurrent callers
// serialize and only one of them sees an affected row.
func (s *PostgresStore) DeleteIfExists(ctx context.Context, key string) (bool, error) {
	query := `DELETE FROM kv_entries WHERE key = $1 AND expires_at > $2`

	n, err := s.execCount(ctx, "delete", query, key, s.now())
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *PostgresStore) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	query := `DELETE FROM kv_entries WHERE starts_with(key, $1) AND expires_at > $2`

	return s.execCount(ctx, "delete by prefix", query, prefix, s.now())
}

// DeleteExpired purges rows whose expiry has passed and returns how many went.
func (s *PostgresStore) DeleteExpired(ctx context.Context) (int, error) {
	query := `DELETE FROM kv_entries WHERE expires_at <= $1`

	return s.execCount(ctx, "delete expired", query, s.now())
}

func (s *PostgresStore) execCount(ctx context.Context, op, query string, args ...any) (int, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, unavailable(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, unavailable(op, err)
	}
	return int(n), nil
}
