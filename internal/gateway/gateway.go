package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	authpb "github.com/CarConnect/CarConnect/internal/api/proto/auth"
	bookingpb "github.com/CarConnect/CarConnect/internal/api/proto/booking"
	vehiclepb "github.com/CarConnect/CarConnect/internal/api/proto/vehicle"
	"github.com/CarConnect/CarConnect/internal/common/logger"
	"github.com/CarConnect/CarConnect/internal/common/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Gateway 浏览器端的 HTTP/JSON 入口：把表单风格的动作代理到后端 gRPC。
// 每个后端调用都经过熔断器，整体入口经过令牌桶限流。
type Gateway struct {
	auth    authpb.AuthServiceClient
	vehicle vehiclepb.VehicleServiceClient
	booking bookingpb.BookingServiceClient

	limiter middleware.RateLimiter
	breaker *middleware.CircuitBreaker
	timeout time.Duration
	log     logger.Logger
}

type Options struct {
	Limiter middleware.RateLimiter
	Breaker *middleware.CircuitBreaker
	Timeout time.Duration
}

func New(conn *grpc.ClientConn, log logger.Logger, opts Options) *Gateway {
	g := &Gateway{
		auth:    authpb.NewAuthServiceClient(conn),
		vehicle: vehiclepb.NewVehicleServiceClient(conn),
		booking: bookingpb.NewBookingServiceClient(conn),
		limiter: opts.Limiter,
		breaker: opts.Breaker,
		timeout: opts.Timeout,
		log:     log,
	}
	if g.timeout <= 0 {
		g.timeout = 5 * time.Second
	}
	return g
}

// Routes 注册全部路由。
func (g *Gateway) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/auth/begin", g.guard(http.MethodPost, g.beginSession))
	mux.HandleFunc("/api/auth/validate", g.guard(http.MethodPost, g.validateSession))
	mux.HandleFunc("/api/auth/register", g.guard(http.MethodPost, g.register))
	mux.HandleFunc("/api/auth/changePassword", g.guard(http.MethodPost, g.changePassword))

	mux.HandleFunc("/api/vehicles/register", g.guard(http.MethodPost, g.registerVehicle))
	mux.HandleFunc("/api/vehicles/search", g.guard(http.MethodGet, g.searchVehicles))
	mux.HandleFunc("/api/vehicles/update", g.guard(http.MethodPost, g.updateVehicle))
	mux.HandleFunc("/api/vehicles/delete", g.guard(http.MethodPost, g.deleteVehicle))

	mux.HandleFunc("/api/bookings/request", g.guard(http.MethodPost, g.requestBooking))
	mux.HandleFunc("/api/bookings/approve", g.guard(http.MethodPost, g.approveRequest))
	mux.HandleFunc("/api/bookings/reject", g.guard(http.MethodPost, g.rejectRequest))
	mux.HandleFunc("/api/bookings/direct", g.guard(http.MethodPost, g.bookDirect))
	mux.HandleFunc("/api/bookings/list", g.guard(http.MethodGet, g.listBookings))
	mux.HandleFunc("/api/usage", g.guard(http.MethodGet, g.usageHistory))
}

// guard 统一入口检查：HTTP 方法 + 限流。
func (g *Gateway) guard(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		if g.limiter != nil && !g.limiter.Allow(r.Context()) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

// call 把后端调用包进熔断器，并套上统一超时。
func (g *Gateway) call(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	if g.breaker == nil {
		return fn(ctx)
	}
	return g.breaker.Call(ctx, func() error { return fn(ctx) })
}

func (g *Gateway) beginSession(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *authpb.BeginSessionResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.auth.BeginSession(ctx, &authpb.BeginSessionRequest{Username: in.Username})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]string{"sessionId": resp.GetSessionId()})
}

func (g *Gateway) validateSession(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SessionID string `json:"sessionId"`
		Proof     string `json:"proof"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *authpb.ValidateSessionResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.auth.ValidateSession(ctx, &authpb.ValidateSessionRequest{
			SessionId: in.SessionID,
			Proof:     in.Proof,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": resp.GetOk()})
}

func (g *Gateway) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username     string `json:"username"`
		PasswordHash string `json:"passwordHash"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *authpb.RegisterResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.auth.Register(ctx, &authpb.RegisterRequest{
			Username:     in.Username,
			PasswordHash: in.PasswordHash,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"ok": resp.GetOk(), "message": resp.GetMessage()})
}

func (g *Gateway) changePassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username    string `json:"username"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *authpb.ChangePasswordResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.auth.ChangePassword(ctx, &authpb.ChangePasswordRequest{
			Username:    in.Username,
			OldPassword: in.OldPassword,
			NewPassword: in.NewPassword,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": resp.GetOk()})
}

func (g *Gateway) registerVehicle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Make     string `json:"make"`
		Model    string `json:"model"`
		Year     int    `json:"year"`
		Location string `json:"location"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *vehiclepb.RegisterVehicleResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.vehicle.RegisterVehicle(ctx, &vehiclepb.RegisterVehicleRequest{
			OwnerUsername: in.Username,
			Make:          in.Make,
			Model:         in.Model,
			Year:          int32(in.Year),
			Location:      in.Location,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"ok": resp.GetOk(), "vehicle": vehicleJSON(resp.GetVehicle())})
}

func (g *Gateway) searchVehicles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("pageSize"))
	onlyAvailable := q.Get("onlyAvailable") == "true" || q.Get("onlyAvailable") == "1"

	var resp *vehiclepb.SearchVehiclesResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.vehicle.SearchVehicles(ctx, &vehiclepb.SearchVehiclesRequest{
			Make:          q.Get("make"),
			Model:         q.Get("model"),
			Year:          int32(year),
			Location:      q.Get("location"),
			OnlyAvailable: onlyAvailable,
			Page:          int32(page),
			PageSize:      int32(size),
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(resp.GetVehicles()))
	for _, v := range resp.GetVehicles() {
		out = append(out, vehicleJSON(v))
	}
	writeJSON(w, map[string]any{"vehicles": out, "total": resp.GetTotal()})
}

func (g *Gateway) updateVehicle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username  string `json:"username"`
		VehicleID string `json:"vehicleId"`
		Make      string `json:"make"`
		Model     string `json:"model"`
		Year      int    `json:"year"`
		Location  string `json:"location"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *vehiclepb.UpdateVehicleResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.vehicle.UpdateVehicle(ctx, &vehiclepb.UpdateVehicleRequest{
			Username:  in.Username,
			VehicleId: in.VehicleID,
			Make:      in.Make,
			Model:     in.Model,
			Year:      int32(in.Year),
			Location:  in.Location,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": resp.GetOk()})
}

func (g *Gateway) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username  string `json:"username"`
		VehicleID string `json:"vehicleId"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *vehiclepb.DeleteVehicleResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.vehicle.DeleteVehicle(ctx, &vehiclepb.DeleteVehicleRequest{
			Username:  in.Username,
			VehicleId: in.VehicleID,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": resp.GetOk()})
}

func (g *Gateway) requestBooking(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Requester string `json:"requester"`
		VehicleID string `json:"vehicleId"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *bookingpb.RequestBookingResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.booking.RequestBooking(ctx, &bookingpb.RequestBookingRequest{
			Requester: in.Requester,
			VehicleId: in.VehicleID,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"ok": resp.GetOk(), "requestId": resp.GetRequestId()})
}

func (g *Gateway) approveRequest(w http.ResponseWriter, r *http.Request) {
	g.decideRequest(w, r, true)
}

func (g *Gateway) rejectRequest(w http.ResponseWriter, r *http.Request) {
	g.decideRequest(w, r, false)
}

func (g *Gateway) decideRequest(w http.ResponseWriter, r *http.Request, approve bool) {
	var in struct {
		RequestID string `json:"requestId"`
	}
	if !decode(w, r, &in) {
		return
	}
	var ok bool
	err := g.call(r.Context(), func(ctx context.Context) error {
		if approve {
			resp, err := g.booking.ApproveRequest(ctx, &bookingpb.ApproveRequestRequest{RequestId: in.RequestID})
			if err != nil {
				return err
			}
			ok = resp.GetOk()
			return nil
		}
		resp, err := g.booking.RejectRequest(ctx, &bookingpb.RejectRequestRequest{RequestId: in.RequestID})
		if err != nil {
			return err
		}
		ok = resp.GetOk()
		return nil
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": ok})
}

func (g *Gateway) bookDirect(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username  string `json:"username"`
		VehicleID string `json:"vehicleId"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if !decode(w, r, &in) {
		return
	}
	var resp *bookingpb.BookDirectResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.booking.BookDirect(ctx, &bookingpb.BookDirectRequest{
			Username:  in.Username,
			VehicleId: in.VehicleID,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": resp.GetOk()})
}

func (g *Gateway) listBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	owner := strings.TrimSpace(q.Get("owner"))
	requester := strings.TrimSpace(q.Get("requester"))
	if owner == "" && requester == "" {
		writeError(w, http.StatusBadRequest, "owner or requester required")
		return
	}

	var resp *bookingpb.ListBookingRequestsResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.booking.ListBookingRequests(ctx, &bookingpb.ListBookingRequestsRequest{
			OwnerUsername: owner,
			Requester:     requester,
		})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(resp.GetRequests()))
	for _, req := range resp.GetRequests() {
		out = append(out, map[string]any{
			"id":        req.GetId(),
			"vehicleId": req.GetVehicleId(),
			"requester": req.GetRequester(),
			"startTime": req.GetStartTime(),
			"endTime":   req.GetEndTime(),
			"status":    req.GetStatus(),
		})
	}
	writeJSON(w, map[string]any{"requests": out})
}

func (g *Gateway) usageHistory(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		writeError(w, http.StatusBadRequest, "username required")
		return
	}

	var resp *bookingpb.GetUsageHistoryResponse
	err := g.call(r.Context(), func(ctx context.Context) error {
		var err error
		resp, err = g.booking.GetUsageHistory(ctx, &bookingpb.GetUsageHistoryRequest{Username: username})
		return err
	})
	if err != nil {
		g.backendError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(resp.GetRecords()))
	for _, rec := range resp.GetRecords() {
		out = append(out, map[string]any{
			"username":  rec.GetUsername(),
			"vehicleId": rec.GetVehicleId(),
			"startTime": rec.GetStartTime(),
			"endTime":   rec.GetEndTime(),
		})
	}
	writeJSON(w, map[string]any{"records": out})
}

// backendError 把 gRPC 错误映射为 HTTP 状态码。
func (g *Gateway) backendError(w http.ResponseWriter, err error) {
	if g.log != nil {
		g.log.Errorf("backend call failed: %v", err)
	}
	st, ok := status.FromError(err)
	if !ok {
		// 熔断器打开等非 gRPC 错误
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	switch st.Code() {
	case codes.InvalidArgument:
		writeError(w, http.StatusBadRequest, st.Message())
	case codes.NotFound:
		writeError(w, http.StatusNotFound, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		writeError(w, http.StatusServiceUnavailable, st.Message())
	default:
		writeError(w, http.StatusInternalServerError, st.Message())
	}
}

func vehicleJSON(v *vehiclepb.Vehicle) map[string]any {
	if v == nil {
		return nil
	}
	return map[string]any{
		"id":        v.GetId(),
		"owner":     v.GetOwnerUsername(),
		"make":      v.GetMake(),
		"model":     v.GetModel(),
		"year":      v.GetYear(),
		"location":  v.GetLocation(),
		"available": v.GetAvailable(),
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
