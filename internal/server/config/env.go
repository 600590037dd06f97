package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

const envPrefix = "SESSIONKEEPER_"

// parseEnv overlays SESSIONKEEPER_* variables, after loading the nearest .env
// file. Variables already set in the process environment take precedence over
// the .env file. Durations are given in whole units named by the suffix.
func parseEnv(c *Config) {
	loadDotEnv()

	c.GRPCAddr = env.GetString(envPrefix+"GRPC_ADDR", c.GRPCAddr)
	c.MetricsAddr = env.GetString(envPrefix+"METRICS_ADDR", c.MetricsAddr)
	c.LogLevel = env.GetString(envPrefix+"LOG_LEVEL", c.LogLevel)

	c.SecretKey = env.GetString(envPrefix+"SECRET_KEY", c.SecretKey)
	c.AccessTTL = env.GetDuration(envPrefix+"ACCESS_TTL_SECONDS", int64(c.AccessTTL/time.Second), time.Second)
	c.RefreshTTL = env.GetDuration(envPrefix+"REFRESH_TTL_SECONDS", int64(c.RefreshTTL/time.Second), time.Second)

	c.StoreBackend = env.GetString(envPrefix+"STORE_BACKEND", c.StoreBackend)
	c.StoreTimeout = env.GetDuration(envPrefix+"STORE_TIMEOUT_MS", int64(c.StoreTimeout/time.Millisecond), time.Millisecond)

	c.RedisAddr = env.GetString(envPrefix+"REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = env.GetString(envPrefix+"REDIS_PASSWORD", c.RedisPassword)
	c.RedisDB = env.GetInt(envPrefix+"REDIS_DB", c.RedisDB)

	c.DatabaseDSN = env.GetString(envPrefix+"DATABASE_DSN", c.DatabaseDSN)
	c.DBMaxOpenConns = env.GetInt(envPrefix+"DB_MAX_OPEN_CONNS", c.DBMaxOpenConns)
	c.DBMaxIdleConns = env.GetInt(envPrefix+"DB_MAX_IDLE_CONNS", c.DBMaxIdleConns)
	c.DBConnMaxLifetime = env.GetDuration(envPrefix+"DB_CONN_MAX_LIFETIME_SECONDS", int64(c.DBConnMaxLifetime/time.Second), time.Second)
	c.SweepInterval = env.GetDuration(envPrefix+"SWEEP_INTERVAL_SECONDS", int64(c.SweepInterval/time.Second), time.Second)

	c.BcryptCost = env.GetInt(envPrefix+"BCRYPT_COST", c.BcryptCost)

	c.RateLimitRPS = env.GetFloat64(envPrefix+"RATE_LIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = env.GetInt(envPrefix+"RATE_LIMIT_BURST", c.RateLimitBurst)

	c.MetricsEnabled = env.GetBool(envPrefix+"METRICS_ENABLED", c.MetricsEnabled)
	c.MetricsNamespace = env.GetString(envPrefix+"METRICS_NAMESPACE", c.MetricsNamespace)
}

// loadDotEnv loads the first .env found walking up from the working directory.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
