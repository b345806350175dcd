package booking

import (
	"context"
	"strings"

	bookingpb "github.com/CarConnect/CarConnect/internal/api/proto/booking"
	"github.com/CarConnect/CarConnect/internal/common/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type GRPCServer struct {
	bookingpb.UnimplementedBookingServiceServer

	svc *Service
}

func NewGRPCServer(db *gorm.DB, bus Notifier, log logger.Logger) *GRPCServer {
	return &GRPCServer{
		svc: NewService(NewRepo(db), bus, log),
	}
}

func (s *GRPCServer) RequestBooking(ctx context.Context, req *bookingpb.RequestBookingRequest) (*bookingpb.RequestBookingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id, ok, err := s.svc.Request(ctx, req.GetRequester(), req.GetVehicleId(), req.GetStartTime(), req.GetEndTime())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &bookingpb.RequestBookingResponse{Ok: ok, RequestId: id}, nil
}

func (s *GRPCServer) ApproveRequest(ctx context.Context, req *bookingpb.ApproveRequestRequest) (*bookingpb.ApproveRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	// 并发审批只有一个赢家，其余统一 ok=false
	ok := s.svc.Approve(ctx, req.GetRequestId())
	return &bookingpb.ApproveRequestResponse{Ok: ok}, nil
}

func (s *GRPCServer) RejectRequest(ctx context.Context, req *bookingpb.RejectRequestRequest) (*bookingpb.RejectRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	ok := s.svc.Reject(ctx, req.GetRequestId())
	return &bookingpb.RejectRequestResponse{Ok: ok}, nil
}

func (s *GRPCServer) BookDirect(ctx context.Context, req *bookingpb.BookDirectRequest) (*bookingpb.BookDirectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	ok := s.svc.BookDirect(ctx, req.GetUsername(), req.GetVehicleId(), req.GetStartTime(), req.GetEndTime())
	return &bookingpb.BookDirectResponse{Ok: ok}, nil
}

func (s *GRPCServer) ListBookingRequests(ctx context.Context, req *bookingpb.ListBookingRequestsRequest) (*bookingpb.ListBookingRequestsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	owner := strings.TrimSpace(req.GetOwnerUsername())
	requester := strings.TrimSpace(req.GetRequester())
	if owner == "" && requester == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_username or requester required")
	}

	var (
		reqs []BookingRequest
		err  error
	)
	if owner != "" {
		reqs, err = s.svc.ListForOwner(ctx, owner)
	} else {
		reqs, err = s.svc.ListByRequester(ctx, requester)
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	out := make([]*bookingpb.BookingRequest, 0, len(reqs))
	for i := range reqs {
		out = append(out, requestToPB(&reqs[i]))
	}
	return &bookingpb.ListBookingRequestsResponse{Requests: out}, nil
}

func (s *GRPCServer) GetUsageHistory(ctx context.Context, req *bookingpb.GetUsageHistoryRequest) (*bookingpb.GetUsageHistoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username required")
	}

	recs, err := s.svc.UsageHistory(ctx, username)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]*bookingpb.UsageRecord, 0, len(recs))
	for i := range recs {
		r := recs[i]
		out = append(out, &bookingpb.UsageRecord{
			Username:  r.Username,
			VehicleId: r.VehicleID,
			StartTime: r.StartTime.Format(TimeLayout),
			EndTime:   r.EndTime.Format(TimeLayout),
		})
	}
	return &bookingpb.GetUsageHistoryResponse{Records: out}, nil
}

func requestToPB(r *BookingRequest) *bookingpb.BookingRequest {
	if r == nil {
		return nil
	}
	return &bookingpb.BookingRequest{
		Id:        r.ID,
		VehicleId: r.VehicleID,
		Requester: r.Requester,
		StartTime: r.StartTime.Format(TimeLayout),
		EndTime:   r.EndTime.Format(TimeLayout),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Unix(),
	}
}
