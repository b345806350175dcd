package vehicle

import (
	"context"
	"fmt"
	"strings"

	"github.com/CarConnect/CarConnect/internal/common/logger"
	"github.com/CarConnect/CarConnect/internal/notify"
	"github.com/google/uuid"
)

// Notifier 事件发布接口，由 notify.Hub 实现。
type Notifier interface {
	Broadcast(event notify.Event)
}

// Service 封装车辆领域的核心用例（不依赖 gRPC / HTTP），便于复用和测试。
// 变更类操作成功后向 Notifier 发布对应事件；失败不发事件。
type Service struct {
	store Store
	bus   Notifier
	log   logger.Logger
}

func NewService(store Store, bus Notifier, log logger.Logger) *Service {
	return &Service{store: store, bus: bus, log: log}
}

// RegisterInput 登记车辆的入参。
type RegisterInput struct {
	OwnerUsername string
	Make          string
	Model         string
	Year          int
	Location      string
}

// Register 登记新车辆，初始可用。成功后广播 vehicleAdded。
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Vehicle, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	owner := strings.TrimSpace(in.OwnerUsername)
	if owner == "" {
		return nil, fmt.Errorf("owner_username required")
	}
	if strings.TrimSpace(in.Make) == "" || strings.TrimSpace(in.Model) == "" {
		return nil, fmt.Errorf("make/model required")
	}

	v := &Vehicle{
		ID:            uuid.NewString(),
		OwnerUsername: owner,
		Make:          strings.TrimSpace(in.Make),
		Model:         strings.TrimSpace(in.Model),
		Year:          in.Year,
		Location:      strings.TrimSpace(in.Location),
		Available:     true,
	}
	if err := s.store.Create(ctx, v); err != nil {
		if s.log != nil {
			s.log.Errorf("vehicle register: %v", err)
		}
		return nil, err
	}

	if s.bus != nil {
		s.bus.Broadcast(notify.VehicleAddedEvent(v.ID, v.Make, v.Model, v.Year, v.Location))
	}
	return v, nil
}

// Update 更新车辆信息。仅车主可操作；非车主返回 false 且不广播。
func (s *Service) Update(ctx context.Context, username, vehicleID, make, model string, year int, location string) (bool, error) {
	if s == nil || s.store == nil {
		return false, fmt.Errorf("service not initialized")
	}

	owner, err := s.store.IsOwner(ctx, username, vehicleID)
	if err != nil {
		return false, err
	}
	if !owner {
		return false, nil
	}

	ok, err := s.store.Update(ctx, vehicleID, make, model, year, location)
	if err != nil || !ok {
		return false, err
	}

	if s.bus != nil {
		s.bus.Broadcast(notify.VehicleUpdatedEvent(vehicleID, make, model, year, location))
	}
	return true, nil
}

// Delete 删除车辆。仅车主可操作。
func (s *Service) Delete(ctx context.Context, username, vehicleID string) (bool, error) {
	if s == nil || s.store == nil {
		return false, fmt.Errorf("service not initialized")
	}

	owner, err := s.store.IsOwner(ctx, username, vehicleID)
	if err != nil {
		return false, err
	}
	if !owner {
		return false, nil
	}

	ok, err := s.store.Delete(ctx, vehicleID)
	if err != nil || !ok {
		return false, err
	}

	if s.bus != nil {
		s.bus.Broadcast(notify.VehicleDeletedEvent(vehicleID))
	}
	return true, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Vehicle, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.FindByID(ctx, strings.TrimSpace(id))
}

func (s *Service) Search(ctx context.Context, c SearchCriteria) ([]Vehicle, int64, error) {
	if s == nil || s.store == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	return s.store.Search(ctx, c)
}

// IsOwner 鉴别用户是否为车主，变更/删除前的前置判定。
func (s *Service) IsOwner(ctx context.Context, username, vehicleID string) (bool, error) {
	if s == nil || s.store == nil {
		return false, fmt.Errorf("service not initialized")
	}
	return s.store.IsOwner(ctx, strings.TrimSpace(username), strings.TrimSpace(vehicleID))
}
