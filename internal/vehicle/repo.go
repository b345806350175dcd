package vehicle

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrVehicleNotFound 查询不到车辆时返回。
var ErrVehicleNotFound = errors.New("vehicle not found")

// Store 是车辆持久化的窄接口，业务层与 gRPC 层都只依赖它。
type Store interface {
	Create(ctx context.Context, v *Vehicle) error
	FindByID(ctx context.Context, id string) (*Vehicle, error)
	Update(ctx context.Context, id, make, model string, year int, location string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, c SearchCriteria) ([]Vehicle, int64, error)
	IsOwner(ctx context.Context, username, vehicleID string) (bool, error)
}

// Repo 基于 GORM/MySQL 的 Store 实现。
type Repo struct {
	db *gorm.DB
}

var _ Store = (*Repo)(nil)

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) Create(ctx context.Context, v *Vehicle) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(v).Error
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var v Vehicle
	if err := db.Where("id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Update 只更新基础信息，不触碰 available（可用性归预约流程管）。
func (r *Repo) Update(ctx context.Context, id, make, model string, year int, location string) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	res := db.Model(&Vehicle{}).Where("id = ?", id).Updates(map[string]interface{}{
		"make":     make,
		"model":    model,
		"year":     year,
		"location": location,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	res := db.Where("id = ?", id).Delete(&Vehicle{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Search 按条件过滤 + 分页。
func (r *Repo) Search(ctx context.Context, c SearchCriteria) ([]Vehicle, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	if c.Limit <= 0 {
		c.Limit = 20
	}
	if c.Offset < 0 {
		c.Offset = 0
	}

	q := db.Model(&Vehicle{})
	if c.Make != "" {
		q = q.Where("make = ?", c.Make)
	}
	if c.Model != "" {
		q = q.Where("model = ?", c.Model)
	}
	if c.Year > 0 {
		q = q.Where("year = ?", c.Year)
	}
	if c.Location != "" {
		q = q.Where("location = ?", c.Location)
	}
	if c.OnlyAvailable {
		q = q.Where("available = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var vehicles []Vehicle
	if err := q.Order("created_at desc").Offset(c.Offset).Limit(c.Limit).Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

func (r *Repo) IsOwner(ctx context.Context, username, vehicleID string) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	var count int64
	err := db.Model(&Vehicle{}).
		Where("id = ? AND owner_username = ?", vehicleID, username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
