package notify

import "encoding/json"

// Action 事件类型标签。
type Action string

const (
	ActionNewBookingRequest     Action = "newBookingRequest"
	ActionApproveBookingRequest Action = "approveBookingRequest"
	ActionVehicleAdded          Action = "vehicleAdded"
	ActionVehicleUpdated        Action = "vehicleUpdated"
	ActionVehicleDeleted        Action = "vehicleDeleted"
)

// Event 是推送给客户端的通知事件（tagged union）。
// 每种 action 只携带与之相关的字段，其余字段省略。
// 序列化为 UTF-8 JSON 文本，一次广播对应一条 WebSocket 消息。
type Event struct {
	Action    Action `json:"action"`
	Username  string `json:"username,omitempty"`
	VehicleID string `json:"vehicleId,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Make      string `json:"make,omitempty"`
	Model     string `json:"model,omitempty"`
	Year      int    `json:"year,omitempty"`
	Location  string `json:"location,omitempty"`
}

// Encode 序列化事件。Event 只含基础类型，不会出错。
func (e Event) Encode() []byte {
	data, _ := json.Marshal(e)
	return data
}

func NewBookingRequestEvent(username, vehicleID, startTime, endTime string) Event {
	return Event{
		Action:    ActionNewBookingRequest,
		Username:  username,
		VehicleID: vehicleID,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func ApproveBookingRequestEvent(vehicleID string) Event {
	return Event{
		Action:    ActionApproveBookingRequest,
		VehicleID: vehicleID,
	}
}

func VehicleAddedEvent(vehicleID, make, model string, year int, location string) Event {
	return Event{
		Action:    ActionVehicleAdded,
		VehicleID: vehicleID,
		Make:      make,
		Model:     model,
		Year:      year,
		Location:  location,
	}
}

func VehicleUpdatedEvent(vehicleID, make, model string, year int, location string) Event {
	return Event{
		Action:    ActionVehicleUpdated,
		VehicleID: vehicleID,
		Make:      make,
		Model:     model,
		Year:      year,
		Location:  location,
	}
}

func VehicleDeletedEvent(vehicleID string) Event {
	return Event{
		Action:    ActionVehicleDeleted,
		VehicleID: vehicleID,
	}
}
