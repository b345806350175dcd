package vehicle

import (
	"time"
)

// Vehicle 是 vehicles 表的 GORM 模型（最小可用）。
// Available 只有两处写入：登记时置 true，预约审批通过时置 false。
// 审批后不会自动回弹为 true（租期结束不归还可用性，与源系统一致）。
type Vehicle struct {
	ID            string    `gorm:"primaryKey;size:36"`
	OwnerUsername string    `gorm:"index;size:64;not null"`
	Make          string    `gorm:"size:64;not null"`
	Model         string    `gorm:"size:64;not null"`
	Year          int       `gorm:"not null"`
	Location      string    `gorm:"size:128"`
	Available     bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// SearchCriteria 车辆搜索条件，零值字段不参与过滤。
type SearchCriteria struct {
	Make          string
	Model         string
	Year          int
	Location      string
	OnlyAvailable bool
	Offset        int
	Limit         int
}
