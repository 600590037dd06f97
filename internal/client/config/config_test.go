package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:50051", cfg.ServerAddr)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "tokens.json", filepath.Base(cfg.TokenFile))
}

func TestLoad_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctl.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_addr":"sk:1","timeout":"3s"}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk:1", cfg.ServerAddr)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "tokens.json", filepath.Base(cfg.TokenFile), "untouched")
}

func TestLoad_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))

	_, err := Load(bad)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
