package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/flagx"
	"github.com/dmitrijs2005/sessionkeeper/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept "15m" or
// integer nanoseconds. Absent fields keep their current value.
type JsonConfig struct {
	GRPCAddr          *string         `json:"grpc_addr"`
	MetricsAddr       *string         `json:"metrics_addr"`
	LogLevel          *string         `json:"log_level"`
	SecretKey         *string         `json:"secret_key"`
	AccessTTL         *timex.Duration `json:"access_token_ttl"`
	RefreshTTL        *timex.Duration `json:"refresh_token_ttl"`
	StoreBackend      *string         `json:"store_backend"`
	StoreTimeout      *timex.Duration `json:"store_timeout"`
	RedisAddr         *string         `json:"redis_addr"`
	RedisPassword     *string         `json:"redis_password"`
	RedisDB           *int            `json:"redis_db"`
	DatabaseDSN       *string         `json:"database_dsn"`
	DBMaxOpenConns    *int            `json:"db_max_open_conns"`
	DBMaxIdleConns    *int            `json:"db_max_idle_conns"`
	DBConnMaxLifetime *timex.Duration `json:"db_conn_max_lifetime"`
	SweepInterval     *timex.Duration `json:"sweep_interval"`
	BcryptCost        *int            `json:"bcrypt_cost"`
	RateLimitRPS      *float64        `json:"rate_limit_rps"`
	RateLimitBurst    *int            `json:"rate_limit_burst"`
	MetricsEnabled    *bool           `json:"metrics_enabled"`
	MetricsNamespace  *string         `json:"metrics_namespace"`
}

// parseJson overlays the file named by -c/-config, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	c.apply(config)
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDurationIf(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}

func (c *JsonConfig) apply(config *Config) {
	setIf(&config.GRPCAddr, c.GRPCAddr)
	setIf(&config.MetricsAddr, c.MetricsAddr)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.SecretKey, c.SecretKey)
	setDurationIf(&config.AccessTTL, c.AccessTTL)
	setDurationIf(&config.RefreshTTL, c.RefreshTTL)
	setIf(&config.StoreBackend, c.StoreBackend)
	setDurationIf(&config.StoreTimeout, c.StoreTimeout)
	setIf(&config.RedisAddr, c.RedisAddr)
	setIf(&config.RedisPassword, c.RedisPassword)
	setIf(&config.RedisDB, c.RedisDB)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.DBMaxOpenConns, c.DBMaxOpenConns)
	setIf(&config.DBMaxIdleConns, c.DBMaxIdleConns)
	setDurationIf(&config.DBConnMaxLifetime, c.DBConnMaxLifetime)
	setDurationIf(&config.SweepInterval, c.SweepInterval)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.RateLimitRPS, c.RateLimitRPS)
	setIf(&config.RateLimitBurst, c.RateLimitBurst)
	setIf(&config.MetricsEnabled, c.MetricsEnabled)
	setIf(&config.MetricsNamespace, c.MetricsNamespace)
}
