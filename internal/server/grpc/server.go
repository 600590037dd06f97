// Package grpc exposes the session service over gRPC using the generated
// stubs from internal/proto.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

// UserService is the account side used by the handlers.
type UserService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, *session.TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.User, *session.TokenPair, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	SetRole(ctx context.Context, userID, role string) error
}

// RateLimit bounds unauthenticated calls (register, login, refresh) per peer.
type RateLimit struct {
	RPS   float64
	Burst int
}

type GRPCServer struct {
	address  string
	users    UserService
	sessions session.Manager
	logger   logging.Logger
	limiter  *peerLimiter
	now      func() time.Time
}

func NewGRPCServer(address string, l logging.Logger, us UserService, sm session.Manager, rl RateLimit) *GRPCServer {
	return &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		sessions: sm,
		limiter:  newPeerLimiter(rl.RPS, rl.Burst),
		now:      time.Now,
	}
}

// newServer builds the grpc.Server with interceptors, the session service and
// the standard health service.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestLogInterceptor,
		s.rateLimitInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterSessionServiceServer(srv, &handler{s: s})

	hs := health.NewServer()
	hs.SetServingStatus(pb.SessionService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

// Run serves until ctx is canceled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv, hs := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	go s.limiter.cleanup(ctx, time.Minute, 10*time.Minute)

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	if err != nil {
		return err
	}
	<-stopped
	return nil
}
