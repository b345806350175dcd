package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/CarConnect/CarConnect/internal/vehicle"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRequestNotFound 查询不到预约请求时返回。
var ErrRequestNotFound = errors.New("booking request not found")

// Repo 基于 GORM/MySQL 的 Ledger 实现。
type Repo struct {
	db *gorm.DB
}

var _ Ledger = (*Repo)(nil)

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) InsertRequest(ctx context.Context, req *BookingRequest) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(req).Error
}

func (r *Repo) GetRequest(ctx context.Context, id string) (*BookingRequest, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var req BookingRequest
	if err := db.Where("id = ?", id).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// ApproveRequest 的并发裁决点：UPDATE ... WHERE status = 'PENDING'。
// RowsAffected = 0 说明没抢到流转（已被并发审批或请求不存在），
// 整个事务内不会追加使用记录，也不会动车辆可用位。
// 赢家在同一事务里记账并把车辆置为不可用，三者要么全生效要么全回滚。
func (r *Repo) ApproveRequest(ctx context.Context, id string) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}

	won := false
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&BookingRequest{}).
			Where("id = ? AND status = ?", id, StatusPending).
			Update("status", StatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var req BookingRequest
		if err := tx.Where("id = ?", id).First(&req).Error; err != nil {
			return err
		}
		rec := &UsageRecord{
			ID:        uuid.NewString(),
			Username:  req.Requester,
			VehicleID: req.VehicleID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		// 已知限制：可用位置 false 后没有任何流程把它翻回 true
		if err := tx.Model(&vehicle.Vehicle{}).
			Where("id = ?", req.VehicleID).
			Update("available", false).Error; err != nil {
			return err
		}
		won = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return won, nil
}

func (r *Repo) RejectRequest(ctx context.Context, id string) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	res := db.Model(&BookingRequest{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Update("status", StatusRejected)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repo) RecordUsage(ctx context.Context, rec *UsageRecord) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return db.Create(rec).Error
}

func (r *Repo) ListRequestsForOwner(ctx context.Context, ownerUsername string) ([]BookingRequest, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var reqs []BookingRequest
	err := db.
		Joins("JOIN vehicles ON vehicles.id = booking_requests.vehicle_id").
		Where("vehicles.owner_username = ?", ownerUsername).
		Order("booking_requests.created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *Repo) ListRequestsByRequester(ctx context.Context, requester string) ([]BookingRequest, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var reqs []BookingRequest
	err := db.Where("requester = ?", requester).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *Repo) UsageHistory(ctx context.Context, username string) ([]UsageRecord, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var recs []UsageRecord
	err := db.Where("username = ?", username).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
