package kvstore

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
)

// ExpiredDeleter is a store that keeps expired entries until told to drop
// them, such as PostgresStore.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// RunSweeper calls DeleteExpired every interval until ctx is done.
func RunSweeper(ctx context.Context, s ExpiredDeleter, every time.Duration, logger logging.Logger) {
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.DeleteExpired(ctx)
			if err != nil {
				logger.Warn(ctx, "sweep expired entries failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Debug(ctx, "swept expired entries", "count", n)
			}
		}
	}
}
