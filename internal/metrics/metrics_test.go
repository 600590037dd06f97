package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	b, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(b)
}

func TestSessionMetrics_Exported(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	m, err := NewSessionMetrics(provider.MeterProvider(), "sessionkeeper")
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordOperation(ctx, "verify", "success")
	m.RecordOperation(ctx, "verify", "success")
	m.RecordOperation(ctx, "verify", "revoked")
	m.RecordDuration(ctx, "verify", 3*time.Millisecond, "success")

	out := scrape(t, provider.Handler())
	assert.Regexp(t, `sessionkeeper_operations(_total)?\{[^}]*operation="verify"[^}]*status="success"[^}]*\} 2`, out)
	assert.Regexp(t, `sessionkeeper_operations(_total)?\{[^}]*status="revoked"[^}]*\} 1`, out)
	assert.Contains(t, out, "sessionkeeper_operation_duration")
}

func TestNoOp(t *testing.T) {
	var m SessionMetrics = NoOp{}
	m.RecordOperation(context.Background(), "issue", "success")
	m.RecordDuration(context.Background(), "issue", time.Second, "success")
}

func TestServer_Endpoints(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	s := NewServer("127.0.0.1:0", provider, logging.Nop())

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestServer_NoProvider(t *testing.T) {
	s := NewServer("127.0.0.1:0", nil, logging.Nop())

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
