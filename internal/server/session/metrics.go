package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/metrics"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
)

type managerWithMetrics struct {
	next    Manager
	metrics metrics.SessionMetrics
}

// NewManagerWithMetrics records the count, outcome and duration of every call.
func NewManagerWithMetrics(next Manager, m metrics.SessionMetrics) Manager {
	return &managerWithMetrics{next: next, metrics: m}
}

func (m *managerWithMetrics) record(ctx context.Context, op string, start time.Time, err error) {
	status := common.Reason(err)
	m.metrics.RecordOperation(ctx, op, status)
	m.metrics.RecordDuration(ctx, op, time.Since(start), status)
}

func (m *managerWithMetrics) Issue(ctx context.Context, userID, role string, now time.Time) (*TokenPair, error) {
	start := time.Now()
	pair, err := m.next.Issue(ctx, userID, role, now)
	m.record(ctx, "issue", start, err)
	return pair, err
}

func (m *managerWithMetrics) Verify(ctx context.Context, accessToken string, now time.Time) (*auth.Claims, error) {
	start := time.Now()
	claims, err := m.next.Verify(ctx, accessToken, now)
	m.record(ctx, "verify", start, err)
	return claims, err
}

func (m *managerWithMetrics) Rotate(ctx context.Context, refreshToken string, now time.Time) (*TokenPair, error) {
	start := time.Now()
	pair, err := m.next.Rotate(ctx, refreshToken, now)
	m.record(ctx, "rotate", start, err)
	return pair, err
}

func (m *managerWithMetrics) RevokeOne(ctx context.Context, accessToken, refreshToken, userID string, now time.Time) error {
	start := time.Now()
	err := m.next.RevokeOne(ctx, accessToken, refreshToken, userID, now)
	m.record(ctx, "revoke_one", start, err)
	return err
}

func (m *managerWithMetrics) RevokeAll(ctx context.Context, userID string) (int, error) {
	start := time.Now()
	n, err := m.next.RevokeAll(ctx, userID)
	m.record(ctx, "revoke_all", start, err)
	return n, err
}
