package vehicle

import (
	"context"
	"errors"
	"strings"

	vehiclepb "github.com/CarConnect/CarConnect/internal/api/proto/vehicle"
	"github.com/CarConnect/CarConnect/internal/common/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type GRPCServer struct {
	vehiclepb.UnimplementedVehicleServiceServer

	svc *Service
}

func NewGRPCServer(db *gorm.DB, bus Notifier, log logger.Logger) *GRPCServer {
	return &GRPCServer{
		svc: NewService(NewRepo(db), bus, log),
	}
}

func (s *GRPCServer) RegisterVehicle(ctx context.Context, req *vehiclepb.RegisterVehicleRequest) (*vehiclepb.RegisterVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	v, err := s.svc.Register(ctx, RegisterInput{
		OwnerUsername: req.GetOwnerUsername(),
		Make:          req.GetMake(),
		Model:         req.GetModel(),
		Year:          int(req.GetYear()),
		Location:      req.GetLocation(),
	})
	if err != nil {
		if strings.Contains(err.Error(), "required") {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &vehiclepb.RegisterVehicleResponse{Ok: true, Vehicle: toPB(v)}, nil
}

func (s *GRPCServer) GetVehicle(ctx context.Context, req *vehiclepb.GetVehicleRequest) (*vehiclepb.GetVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	v, err := s.svc.Get(ctx, id)
	if errors.Is(err, ErrVehicleNotFound) {
		return nil, status.Error(codes.NotFound, "vehicle not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &vehiclepb.GetVehicleResponse{Vehicle: toPB(v)}, nil
}

func (s *GRPCServer) SearchVehicles(ctx context.Context, req *vehiclepb.SearchVehiclesRequest) (*vehiclepb.SearchVehiclesResponse, error) {
	c := SearchCriteria{}
	page := 1
	size := 20
	if req != nil {
		c.Make = strings.TrimSpace(req.GetMake())
		c.Model = strings.TrimSpace(req.GetModel())
		c.Year = int(req.GetYear())
		c.Location = strings.TrimSpace(req.GetLocation())
		c.OnlyAvailable = req.GetOnlyAvailable()
		if req.GetPage() > 0 {
			page = int(req.GetPage())
		}
		if req.GetPageSize() > 0 && req.GetPageSize() <= 200 {
			size = int(req.GetPageSize())
		}
	}
	c.Offset = (page - 1) * size
	c.Limit = size

	vs, total, err := s.svc.Search(ctx, c)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]*vehiclepb.Vehicle, 0, len(vs))
	for i := range vs {
		v := vs[i]
		out = append(out, toPB(&v))
	}
	return &vehiclepb.SearchVehiclesResponse{Vehicles: out, Total: total}, nil
}

func (s *GRPCServer) UpdateVehicle(ctx context.Context, req *vehiclepb.UpdateVehicleRequest) (*vehiclepb.UpdateVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	username := strings.TrimSpace(req.GetUsername())
	vehicleID := strings.TrimSpace(req.GetVehicleId())
	if username == "" || vehicleID == "" {
		return nil, status.Error(codes.InvalidArgument, "username/vehicle_id required")
	}

	// 非车主与车辆不存在都归一为 ok=false，不向调用方区分
	ok, err := s.svc.Update(ctx, username, vehicleID,
		strings.TrimSpace(req.GetMake()), strings.TrimSpace(req.GetModel()),
		int(req.GetYear()), strings.TrimSpace(req.GetLocation()))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &vehiclepb.UpdateVehicleResponse{Ok: ok}, nil
}

func (s *GRPCServer) DeleteVehicle(ctx context.Context, req *vehiclepb.DeleteVehicleRequest) (*vehiclepb.DeleteVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	username := strings.TrimSpace(req.GetUsername())
	vehicleID := strings.TrimSpace(req.GetVehicleId())
	if username == "" || vehicleID == "" {
		return nil, status.Error(codes.InvalidArgument, "username/vehicle_id required")
	}

	ok, err := s.svc.Delete(ctx, username, vehicleID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &vehiclepb.DeleteVehicleResponse{Ok: ok}, nil
}

func (s *GRPCServer) CheckOwnership(ctx context.Context, req *vehiclepb.CheckOwnershipRequest) (*vehiclepb.CheckOwnershipResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	ok, err := s.svc.IsOwner(ctx, req.GetUsername(), req.GetVehicleId())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &vehiclepb.CheckOwnershipResponse{IsOwner: ok}, nil
}

func toPB(v *Vehicle) *vehiclepb.Vehicle {
	if v == nil {
		return nil
	}
	return &vehiclepb.Vehicle{
		Id:            v.ID,
		OwnerUsername: v.OwnerUsername,
		Make:          v.Make,
		Model:         v.Model,
		Year:          int32(v.Year),
		Location:      v.Location,
		Available:     v.Available,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
}
