package booking

import "time"

// TimeLayout 预约时段在对外接口与事件里的时间格式。
const TimeLayout = "2006-01-02 15:04:05"

// Status 预约请求状态枚举（持久化为字符串）。
type Status string

const (
	StatusPending  Status = "PENDING"  // 已提交，待车主审批
	StatusApproved Status = "APPROVED" // 已批准（终态）
	StatusRejected Status = "REJECTED" // 已拒绝（终态）
)

// BookingRequest 是 booking_requests 表的 GORM 模型。
// 状态只能从 PENDING 单向流转到 APPROVED / REJECTED，且恰好一次。
type BookingRequest struct {
	ID        string    `gorm:"primaryKey;size:36"`
	VehicleID string    `gorm:"index;size:36;not null"`
	Requester string    `gorm:"index;size:64;not null"`
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	Status    Status    `gorm:"type:varchar(16);index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// UsageRecord 是 usage_history 表的 GORM 模型，只追加不修改。
// 一条记录要么来自即时预订，要么由批准的预约请求派生。
type UsageRecord struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Username  string    `gorm:"index;size:64;not null"`
	VehicleID string    `gorm:"index;size:36;not null"`
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
