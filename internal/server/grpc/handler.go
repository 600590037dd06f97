package grpc

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/session"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

type handler struct {
	pb.UnimplementedSessionServiceServer
	s *GRPCServer
}

func toTokens(p *session.TokenPair) *pb.Tokens {
	return &pb.Tokens{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		AccessExpiresAt:  timestamppb.New(p.AccessExpiresAt),
		RefreshExpiresAt: timestamppb.New(p.RefreshExpiresAt),
	}
}

func authResponse(u *models.User, p *session.TokenPair) *pb.AuthResponse {
	return &pb.AuthResponse{UserId: u.ID, Role: u.Role, Tokens: toTokens(p)}
}

func (h *handler) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal || status.Code(st) == codes.Unavailable {
		h.s.logger.Error(ctx, op+" failed", "error", err)
	} else {
		h.s.logger.Info(ctx, op+" rejected", "reason", common.Reason(err))
	}
	return st
}

func (h *handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	u, pair, err := h.s.users.Register(ctx, req.GetEmail(), req.GetName(), req.GetPassword())
	if err != nil {
		return nil, h.fail(ctx, "register", err)
	}
	return authResponse(u, pair), nil
}

func (h *handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	u, pair, err := h.s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, h.fail(ctx, "login", err)
	}
	return authResponse(u, pair), nil
}

func (h *handler) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {
	pair, err := h.s.sessions.Rotate(ctx, req.GetRefreshToken(), h.s.now())
	if err != nil {
		return nil, h.fail(ctx, "refresh", err)
	}
	return &pb.RefreshResponse{Tokens: toTokens(pair)}, nil
}

func (h *handler) Logout(ctx context.Context, req *pb.LogoutRequest) (*emptypb.Empty, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}

	err = h.s.sessions.RevokeOne(ctx, accessTokenFromContext(ctx), req.GetRefreshToken(), claims.Subject, h.s.now())
	if err != nil {
		return nil, h.fail(ctx, "logout", err)
	}
	return &emptypb.Empty{}, nil
}

// LogoutAll blacklists the calling access token and drops every refresh
// record of the caller.
func (h *handler) LogoutAll(ctx context.Context, _ *emptypb.Empty) (*pb.LogoutAllResponse, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.s.sessions.RevokeOne(ctx, accessTokenFromContext(ctx), "", claims.Subject, h.s.now()); err != nil {
		return nil, h.fail(ctx, "logout_all", err)
	}

	n, err := h.s.sessions.RevokeAll(ctx, claims.Subject)
	if err != nil {
		return nil, h.fail(ctx, "logout_all", err)
	}
	return &pb.LogoutAllResponse{Revoked: int32(n)}, nil
}

func (h *handler) Whoami(ctx context.Context, _ *emptypb.Empty) (*pb.WhoamiResponse, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.s.users.Profile(ctx, claims.Subject)
	if err != nil {
		return nil, h.fail(ctx, "whoami", err)
	}

	return &pb.WhoamiResponse{
		UserId:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      claims.Role,
		ExpiresAt: timestamppb.New(claims.ExpiresAtTime()),
	}, nil
}

func (h *handler) SetRole(ctx context.Context, req *pb.SetRoleRequest) (*emptypb.Empty, error) {
	claims, err := requireClaims(ctx)
	if err != nil {
		return nil, err
	}
	if claims.Role != auth.RoleAdmin {
		return nil, status.Error(codes.PermissionDenied, "admin role required")
	}

	if err := h.s.users.SetRole(ctx, req.GetUserId(), req.GetRole()); err != nil {
		return nil, h.fail(ctx, "set_role", err)
	}
	h.s.logger.Info(ctx, "role changed", "user_id", req.GetUserId(), "role", req.GetRole(), "by", claims.Subject)
	return &emptypb.Empty{}, nil
}

func requireClaims(ctx context.Context) (*auth.Claims, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return claims, nil
}
