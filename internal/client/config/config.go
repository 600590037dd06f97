// Package config holds settings for the sessionctl command-line client.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/timex"
)

// Config holds runtime settings for sessionctl.
//
// Fields:
//   - ServerAddr: host:port of the sessionkeeper gRPC endpoint.
//   - TokenFile: where the current session's tokens are kept (mode 0600).
//   - Timeout: upper bound for a single command's network calls.
type Config struct {
	ServerAddr string
	TokenFile  string
	Timeout    time.Duration
}

// LoadDefaults populates c with defaults. TokenFile lives under the user's
// config directory, or the working directory if that cannot be resolved.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "127.0.0.1:50051"
	c.Timeout = 10 * time.Second

	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	c.TokenFile = filepath.Join(dir, "sessionkeeper", "tokens.json")
}

type jsonConfig struct {
	ServerAddr *string         `json:"server_addr"`
	TokenFile  *string         `json:"token_file"`
	Timeout    *timex.Duration `json:"timeout"`
}

// Load returns defaults overlaid with the JSON file at path. An empty path
// means defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(b, &jc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if jc.ServerAddr != nil {
		cfg.ServerAddr = *jc.ServerAddr
	}
	if jc.TokenFile != nil {
		cfg.TokenFile = *jc.TokenFile
	}
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}

	return cfg, nil
}
