// Package server wires configuration, storage, the session service and the
// network surfaces together and runs them until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/metrics"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/kvstore"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/session"
	"github.com/go-redis/redis/v8"

	gs "github.com/dmitrijs2005/sessionkeeper/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	sweeper  kvstore.ExpiredDeleter
	closers  []io.Closer
	provider *metrics.Provider
	grpc     *gs.GRPCServer
	metrics  *metrics.Server
}

// NewApp opens the database, runs migrations and builds every component.
// Resources opened before a failure are released.
func NewApp(ctx context.Context, c *config.Config) (_ *App, err error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	defer func() {
		if err != nil {
			app.close(ctx)
		}
	}()

	app.db, err = dbx.Open(ctx, c.DatabaseDSN, dbx.PoolOptions{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.closers = append(app.closers, app.db)

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, app.db); err != nil {
		return nil, err
	}
	users := rm.Users(app.db)

	store, err := app.openStore(ctx, rm)
	if err != nil {
		return nil, err
	}

	svc, err := session.NewService(session.Config{
		Secret:     []byte(c.SecretKey),
		AccessTTL:  c.AccessTTL,
		RefreshTTL: c.RefreshTTL,
	}, kvstore.WithTimeout(store, c.StoreTimeout), users, logger)
	if err != nil {
		return nil, err
	}

	var sessions session.Manager = svc
	if c.MetricsEnabled {
		app.provider, err = metrics.NewProvider()
		if err != nil {
			return nil, fmt.Errorf("metrics provider: %w", err)
		}
		sm, err := metrics.NewSessionMetrics(app.provider.MeterProvider(), c.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("session metrics: %w", err)
		}
		sessions = session.NewManagerWithMetrics(svc, sm)
	}

	us := services.NewUserService(app.db, rm, sessions, c.BcryptCost, logger)

	app.grpc = gs.NewGRPCServer(c.GRPCAddr, logger, us, sessions, gs.RateLimit{
		RPS:   c.RateLimitRPS,
		Burst: c.RateLimitBurst,
	})
	if c.MetricsAddr != "" {
		app.metrics = metrics.NewServer(c.MetricsAddr, app.provider, logger)
	}

	return app, nil
}

// openStore builds the revocation store selected by the configuration.
func (app *App) openStore(ctx context.Context, rm repomanager.RepositoryManager) (kvstore.Store, error) {
	switch app.config.StoreBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     app.config.RedisAddr,
			Password: app.config.RedisPassword,
			DB:       app.config.RedisDB,
		})
		app.closers = append(app.closers, client)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		return kvstore.NewRedisStore(client), nil
	case config.BackendPostgres:
		kv := rm.KV(app.db, nil)
		app.sweeper = kv
		return kv, nil
	case config.BackendMemory:
		app.logger.Warn(ctx, "using in-memory revocation store, state is lost on restart")
		return kvstore.NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", app.config.StoreBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until a signal arrives, ctx is canceled or a server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.config.StoreBackend)
	app.initSignalHandler(cancelFunc)

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
		cancelFunc()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.grpc.Run(ctx); err != nil {
			app.logger.Error(ctx, "grpc server failed", "error", err)
			fail(err)
		}
	}()

	if app.metrics != nil {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := app.metrics.Start(ctx); err != nil {
				app.logger.Error(ctx, "metrics server failed", "error", err)
				fail(err)
			}
		}()
		go func() {
			defer wg.Done()
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.metrics.Shutdown(shutdownCtx); err != nil {
				app.logger.Warn(ctx, "metrics server shutdown", "error", err)
			}
		}()
	}

	if app.sweeper != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kvstore.RunSweeper(ctx, app.sweeper, app.config.SweepInterval, app.logger.With("module", "sweeper"))
		}()
	}

	wg.Wait()
	app.close(context.Background())
	app.logger.Info(context.Background(), "App stopped")

	return firstErr
}

func (app *App) close(ctx context.Context) {
	if app.provider != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := app.provider.Shutdown(shutdownCtx); err != nil {
			app.logger.Warn(ctx, "metrics provider shutdown", "error", err)
		}
		cancel()
	}

	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		errs = append(errs, app.closers[i].Close())
	}
	if err := errors.Join(errs...); err != nil {
		app.logger.Warn(ctx, "closing resources", "error", err)
	}
	app.closers = nil
}
