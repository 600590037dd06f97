package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/gin-gonic/gin"
)

// Server exposes /metrics and a /healthz liveness check.
type Server struct {
	server *http.Server
	logger logging.Logger
}

func NewServer(addr string, provider *Provider, logger logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if provider != nil {
		router.GET("/metrics", gin.WrapH(provider.Handler()))
	}

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger.With("module", "metrics"),
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info(ctx, "starting metrics server", "addr", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "shutting down metrics server")
	return s.server.Shutdown(ctx)
}
