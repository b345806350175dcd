package auth

import (
	"context"
	"strings"

	authpb "github.com/CarConnect/CarConnect/internal/api/proto/auth"
	"github.com/CarConnect/CarConnect/internal/common/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type GRPCServer struct {
	authpb.UnimplementedAuthServiceServer

	svc *Service
}

func NewGRPCServer(db *gorm.DB, sessions *SessionStore, log logger.Logger) *GRPCServer {
	return &GRPCServer{
		svc: NewService(NewRepo(db), sessions, log),
	}
}

func (s *GRPCServer) BeginSession(ctx context.Context, req *authpb.BeginSessionRequest) (*authpb.BeginSessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username required")
	}
	return &authpb.BeginSessionResponse{
		SessionId: s.svc.BeginSession(ctx, username),
	}, nil
}

func (s *GRPCServer) ValidateSession(ctx context.Context, req *authpb.ValidateSessionRequest) (*authpb.ValidateSessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	// 校验失败不区分原因，统一 ok=false（不把"用户是否存在"泄露给调用方）
	ok := s.svc.ValidateSession(ctx, strings.TrimSpace(req.GetSessionId()), strings.TrimSpace(req.GetProof()))
	return &authpb.ValidateSessionResponse{Ok: ok}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *authpb.RegisterRequest) (*authpb.RegisterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	username := strings.TrimSpace(req.GetUsername())
	passwordHash := strings.TrimSpace(req.GetPasswordHash())
	if username == "" || passwordHash == "" {
		return nil, status.Error(codes.InvalidArgument, "username/password_hash required")
	}

	ok, err := s.svc.Register(ctx, username, passwordHash)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	resp := &authpb.RegisterResponse{Ok: ok}
	if !ok {
		resp.Message = "username already exists"
	}
	return resp, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *authpb.ChangePasswordRequest) (*authpb.ChangePasswordResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username required")
	}
	ok := s.svc.ChangePassword(ctx, username, req.GetOldPassword(), req.GetNewPassword())
	return &authpb.ChangePasswordResponse{Ok: ok}, nil
}
