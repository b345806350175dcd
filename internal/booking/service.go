package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CarConnect/CarConnect/internal/common/logger"
	"github.com/CarConnect/CarConnect/internal/notify"
	"github.com/google/uuid"
)

// Notifier 事件发布接口，由 notify.Hub 实现。
type Notifier interface {
	Broadcast(event notify.Event)
}

// Service 驱动预约请求的生命周期：
// 提交（PENDING）→ 审批（APPROVED，顺带记账 + 占用车辆）或拒绝（REJECTED）。
// 另有绕过审批的即时预订路径 BookDirect，两条路径互不排斥。
// 业务失败一律表现为 false；只有存储故障会返回非空 error 并记日志。
type Service struct {
	ledger Ledger
	bus    Notifier
	log    logger.Logger
}

func NewService(ledger Ledger, bus Notifier, log logger.Logger) *Service {
	return &Service{ledger: ledger, bus: bus, log: log}
}

// ParseTimeRange 解析并校验预约时段。
func ParseTimeRange(startTime, endTime string) (time.Time, time.Time, error) {
	start, err := time.Parse(TimeLayout, strings.TrimSpace(startTime))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_time: %w", err)
	}
	end, err := time.Parse(TimeLayout, strings.TrimSpace(endTime))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_time: %w", err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_time must be after start_time")
	}
	return start, end, nil
}

// Request 提交新的预约请求。落库成功后广播 newBookingRequest；
// 落库失败绝不发事件。
func (s *Service) Request(ctx context.Context, requester, vehicleID, startTime, endTime string) (string, bool, error) {
	if s == nil || s.ledger == nil {
		return "", false, fmt.Errorf("service not initialized")
	}
	requester = strings.TrimSpace(requester)
	vehicleID = strings.TrimSpace(vehicleID)
	if requester == "" || vehicleID == "" {
		return "", false, nil
	}
	start, end, err := ParseTimeRange(startTime, endTime)
	if err != nil {
		return "", false, nil
	}

	req := &BookingRequest{
		ID:        uuid.NewString(),
		VehicleID: vehicleID,
		Requester: requester,
		StartTime: start,
		EndTime:   end,
		Status:    StatusPending,
	}
	if err := s.ledger.InsertRequest(ctx, req); err != nil {
		if s.log != nil {
			s.log.Errorf("booking request: insert: %v", err)
		}
		return "", false, err
	}

	if s.bus != nil {
		s.bus.Broadcast(notify.NewBookingRequestEvent(requester, vehicleID,
			start.Format(TimeLayout), end.Format(TimeLayout)))
	}
	return req.ID, true, nil
}

// Approve 批准预约请求。
// Ledger 的条件更新决定唯一赢家：记账和占用车辆在 Ledger 的同一
// 事务里完成，赢家只负责广播事件；输家（请求已终态/不存在）拿到
// false，不产生副作用。
func (s *Service) Approve(ctx context.Context, requestID string) bool {
	if s == nil || s.ledger == nil {
		return false
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return false
	}

	// 快路径：终态请求直接拒绝，省一次条件更新
	req, err := s.ledger.GetRequest(ctx, requestID)
	if err != nil {
		if !errors.Is(err, ErrRequestNotFound) && s.log != nil {
			s.log.Errorf("approve %s: load request: %v", requestID, err)
		}
		return false
	}
	if !CanTransition(req.Status, StatusApproved) {
		return false
	}

	won, err := s.ledger.ApproveRequest(ctx, requestID)
	if err != nil {
		if s.log != nil {
			s.log.Errorf("approve %s: transition: %v", requestID, err)
		}
		return false
	}
	if !won {
		return false
	}

	if s.bus != nil {
		s.bus.Broadcast(notify.ApproveBookingRequestEvent(req.VehicleID))
	}
	return true
}

// Reject 拒绝预约请求。不触碰车辆可用性，也不广播事件。
func (s *Service) Reject(ctx context.Context, requestID string) bool {
	if s == nil || s.ledger == nil {
		return false
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return false
	}

	won, err := s.ledger.RejectRequest(ctx, requestID)
	if err != nil {
		if s.log != nil {
			s.log.Errorf("reject %s: transition: %v", requestID, err)
		}
		return false
	}
	return won
}

// BookDirect 即时预订：跳过请求/审批流程，直接记一条使用记录。
func (s *Service) BookDirect(ctx context.Context, username, vehicleID, startTime, endTime string) bool {
	if s == nil || s.ledger == nil {
		return false
	}
	username = strings.TrimSpace(username)
	vehicleID = strings.TrimSpace(vehicleID)
	if username == "" || vehicleID == "" {
		return false
	}
	start, end, err := ParseTimeRange(startTime, endTime)
	if err != nil {
		return false
	}

	rec := &UsageRecord{
		ID:        uuid.NewString(),
		Username:  username,
		VehicleID: vehicleID,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.ledger.RecordUsage(ctx, rec); err != nil {
		if s.log != nil {
			s.log.Errorf("book direct: record usage: %v", err)
		}
		return false
	}
	return true
}

// ListForOwner 车主视角：名下车辆收到的预约请求。
func (s *Service) ListForOwner(ctx context.Context, ownerUsername string) ([]BookingRequest, error) {
	if s == nil || s.ledger == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.ledger.ListRequestsForOwner(ctx, strings.TrimSpace(ownerUsername))
}

// ListByRequester 用户视角：自己发起的预约请求。
func (s *Service) ListByRequester(ctx context.Context, requester string) ([]BookingRequest, error) {
	if s == nil || s.ledger == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.ledger.ListRequestsByRequester(ctx, strings.TrimSpace(requester))
}

// UsageHistory 用户的使用记录。
func (s *Service) UsageHistory(ctx context.Context, username string) ([]UsageRecord, error) {
	if s == nil || s.ledger == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.ledger.UsageHistory(ctx, strings.TrimSpace(username))
}
