package booking

// AllowTransition 定义预约请求状态机的允许流转关系。
// 终态（approved / rejected）不允许再流转，重复审批视为非法。
var AllowTransition = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
// 注意没有自环：对终态请求重放同一审批也会返回 false。
func CanTransition(from, to Status) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal 判断状态是否为终态。
func IsTerminal(s Status) bool {
	allowed, ok := AllowTransition[s]
	return ok && len(allowed) == 0
}
