package kvstore

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
)

type countingDeleter struct {
	calls atomic.Int32
	err   error
}

func (c *countingDeleter) DeleteExpired(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestRunSweeper(t *testing.T) {
	for name, err := range map[string]error{"ok": nil, "failing": errors.New("db down")} {
		t.Run(name, func(t *testing.T) {
			d := &countingDeleter{err: err}
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				RunSweeper(ctx, d, 5*time.Millisecond, logging.Nop())
				close(done)
			}()

			assert.Eventually(t, func() bool { return d.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
			cancel()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("sweeper did not stop")
			}
		})
	}
}

func TestRunSweeper_DisabledReturnsImmediately(t *testing.T) {
	d := &countingDeleter{}
	RunSweeper(context.Background(), d, 0, logging.Nop())
	assert.Zero(t, d.calls.Load())
}
