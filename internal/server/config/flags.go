package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/flagx"
)

// parseFlags overlays the short server flags found in args:
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-m string   metrics bind address
//	-l string   log level
//	-s string   token signing secret
//	-t int      access token lifetime, minutes
//	-r int      refresh token lifetime, minutes
//	-b string   store backend: redis, postgres or memory
//	-R string   redis address
//	-d string   PostgreSQL DSN
//
// Other arguments are ignored.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-l", "-s", "-t", "-r", "-b", "-R", "-d"})

	fs := flag.NewFlagSet("sessionkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessMinutes := fs.Int("t", int(config.AccessTTL.Minutes()), "access token lifetime (in minutes)")
	refreshMinutes := fs.Int("r", int(config.RefreshTTL.Minutes()), "refresh token lifetime (in minutes)")

	fs.StringVar(&config.StoreBackend, "b", config.StoreBackend, "store backend")
	fs.StringVar(&config.RedisAddr, "R", config.RedisAddr, "redis address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// lifetimes change only when given explicitly
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTTL = time.Duration(*accessMinutes) * time.Minute
		case "r":
			config.RefreshTTL = time.Duration(*refreshMinutes) * time.Minute
		}
	})
	return nil
}
