package booking

import "context"

// Ledger 是预约持久化的窄接口：预约请求、车辆可用性、使用记录
// 三类数据的读写都走这里。并发正确性的最终保证在 Ledger 实现内：
// Approve/Reject 必须是"仅当当前状态为 PENDING"的条件更新——同一
// 请求上并发审批时由它裁决唯一赢家，进程内的状态机判断只是快路径。
type Ledger interface {
	// InsertRequest 落库一条新的 PENDING 请求。
	InsertRequest(ctx context.Context, req *BookingRequest) error

	// GetRequest 按 id 读取请求；不存在时返回 ErrRequestNotFound。
	GetRequest(ctx context.Context, id string) (*BookingRequest, error)

	// ApproveRequest 条件流转 PENDING -> APPROVED，并在同一事务内
	// 由请求字段派生追加一条 UsageRecord、把对应车辆置为不可用。
	// 请求已是终态时返回 false，且不产生任何副作用（不重复记账、
	// 不重复翻可用位）。
	ApproveRequest(ctx context.Context, id string) (bool, error)

	// RejectRequest 条件流转 PENDING -> REJECTED，无其他副作用。
	RejectRequest(ctx context.Context, id string) (bool, error)

	// RecordUsage 直接追加一条使用记录（即时预订路径）。
	RecordUsage(ctx context.Context, rec *UsageRecord) error

	// ListRequestsForOwner 返回某车主名下车辆收到的全部请求。
	ListRequestsForOwner(ctx context.Context, ownerUsername string) ([]BookingRequest, error)

	// ListRequestsByRequester 返回某用户发起的全部请求。
	ListRequestsByRequester(ctx context.Context, requester string) ([]BookingRequest, error)

	// UsageHistory 返回某用户的使用记录，新的在前。
	UsageHistory(ctx context.Context, username string) ([]UsageRecord, error)
}
