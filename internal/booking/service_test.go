package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/CarConnect/CarConnect/internal/notify"
)

// memLedger 进程内 Ledger 实现，条件流转用互斥锁保证原子性，
// 语义与 SQL 条件更新一致。
type memLedger struct {
	mu        sync.Mutex
	requests  map[string]*BookingRequest
	usage     []UsageRecord
	available map[string]bool
	failAll   bool
}

func newMemLedger() *memLedger {
	return &memLedger{
		requests:  make(map[string]*BookingRequest),
		available: make(map[string]bool),
	}
}

func (m *memLedger) InsertRequest(_ context.Context, req *BookingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fmt.Errorf("ledger down")
	}
	cp := *req
	m.requests[req.ID] = &cp
	return nil
}

func (m *memLedger) GetRequest(_ context.Context, id string) (*BookingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (m *memLedger) transition(id string, to Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return false, fmt.Errorf("ledger down")
	}
	req, ok := m.requests[id]
	if !ok || req.Status != StatusPending {
		return false, nil
	}
	req.Status = to
	if to == StatusApproved {
		m.available[req.VehicleID] = false
		m.usage = append(m.usage, UsageRecord{
			ID:        "usage-" + id,
			Username:  req.Requester,
			VehicleID: req.VehicleID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
	}
	return true, nil
}

func (m *memLedger) ApproveRequest(_ context.Context, id string) (bool, error) {
	return m.transition(id, StatusApproved)
}

func (m *memLedger) RejectRequest(_ context.Context, id string) (bool, error) {
	return m.transition(id, StatusRejected)
}

func (m *memLedger) RecordUsage(_ context.Context, rec *UsageRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fmt.Errorf("ledger down")
	}
	m.usage = append(m.usage, *rec)
	return nil
}

func (m *memLedger) ListRequestsForOwner(_ context.Context, _ string) ([]BookingRequest, error) {
	return nil, nil
}

func (m *memLedger) ListRequestsByRequester(_ context.Context, requester string) ([]BookingRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []BookingRequest
	for _, req := range m.requests {
		if req.Requester == requester {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *memLedger) UsageHistory(_ context.Context, username string) ([]UsageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []UsageRecord
	for _, rec := range m.usage {
		if rec.Username == username {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memLedger) usageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.usage)
}

type captureBus struct {
	mu     sync.Mutex
	events []notify.Event
}

func (b *captureBus) Broadcast(event notify.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *captureBus) snapshot() []notify.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]notify.Event, len(b.events))
	copy(out, b.events)
	return out
}

func TestRequestEmitsEvent(t *testing.T) {
	ledger := newMemLedger()
	bus := &captureBus{}
	svc := NewService(ledger, bus, nil)

	id, ok, err := svc.Request(context.Background(), "alice", "veh-1",
		"2026-09-01 09:00:00", "2026-09-01 17:00:00")
	if err != nil || !ok {
		t.Fatalf("Request failed: ok=%v err=%v", ok, err)
	}
	if id == "" {
		t.Fatalf("expected request id")
	}

	events := bus.snapshot()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Action != notify.ActionNewBookingRequest {
		t.Fatalf("unexpected action %q", e.Action)
	}
	if e.Username != "alice" || e.VehicleID != "veh-1" {
		t.Fatalf("unexpected event payload: %+v", e)
	}
	if e.StartTime != "2026-09-01 09:00:00" || e.EndTime != "2026-09-01 17:00:00" {
		t.Fatalf("unexpected event period: %+v", e)
	}
}

func TestRequestInvalidPeriod(t *testing.T) {
	ledger := newMemLedger()
	bus := &captureBus{}
	svc := NewService(ledger, bus, nil)

	cases := [][2]string{
		{"not-a-time", "2026-09-01 17:00:00"},
		{"2026-09-01 09:00:00", "bogus"},
		{"2026-09-01 17:00:00", "2026-09-01 09:00:00"}, // 结束早于开始
		{"2026-09-01 09:00:00", "2026-09-01 09:00:00"}, // 零长度
	}
	for _, c := range cases {
		if _, ok, err := svc.Request(context.Background(), "alice", "veh-1", c[0], c[1]); ok || err != nil {
			t.Fatalf("Request(%q, %q): ok=%v err=%v, want ok=false err=nil", c[0], c[1], ok, err)
		}
	}
	if got := bus.snapshot(); len(got) != 0 {
		t.Fatalf("invalid requests must not emit events, got %d", len(got))
	}
}

func TestRequestStorageFailureNoEvent(t *testing.T) {
	ledger := newMemLedger()
	ledger.failAll = true
	bus := &captureBus{}
	svc := NewService(ledger, bus, nil)

	_, ok, err := svc.Request(context.Background(), "alice", "veh-1",
		"2026-09-01 09:00:00", "2026-09-01 17:00:00")
	if ok {
		t.Fatalf("expected ok=false on storage failure")
	}
	if err == nil {
		t.Fatalf("expected storage error to surface")
	}
	if got := bus.snapshot(); len(got) != 0 {
		t.Fatalf("storage failure must not emit events, got %d", len(got))
	}
}

func TestApproveOnce(t *testing.T) {
	ledger := newMemLedger()
	bus := &captureBus{}
	svc := NewService(ledger, bus, nil)

	id, ok, err := svc.Request(context.Background(), "alice", "veh-1",
		"2026-09-01 09:00:00", "2026-09-01 17:00:00")
	if err != nil || !ok {
		t.Fatalf("Request failed: ok=%v err=%v", ok, err)
	}

	if !svc.Approve(context.Background(), id) {
		t.Fatalf("first approve should win")
	}
	if svc.Approve(context.Background(), id) {
		t.Fatalf("second approve must lose")
	}
	if svc.Reject(context.Background(), id) {
		t.Fatalf("reject after approve must lose")
	}

	if got := ledger.usageCount(); got != 1 {
		t.Fatalf("expected exactly 1 usage record, got %d", got)
	}
	if avail, set := ledger.available["veh-1"]; !set || avail {
		t.Fatalf("vehicle should be marked unavailable, got set=%v avail=%v", set, avail)
	}

	// 事件：1 条 newBookingRequest + 1 条 approveBookingRequest
	events := bus.snapshot()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Action != notify.ActionApproveBookingRequest || events[1].VehicleID != "veh-1" {
		t.Fatalf("unexpected approve event: %+v", events[1])
	}
}

func TestRejectNoEventNoUsage(t *testing.T) {
	ledger := newMemLedger()
	bus := &captureBus{}
	svc := NewService(ledger, bus, nil)

	id, _, err := svc.Request(context.Background(), "alice", "veh-1",
		"2026-09-01 09:00:00", "2026-09-01 17:00:00")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}

	if !svc.Reject(context.Background(), id) {
		t.Fatalf("reject on PENDING should win")
	}
	if svc.Approve(context.Background(), id) {
		t.Fatalf("approve after reject must lose")
	}
	if got := ledger.usageCount(); got != 0 {
		t.Fatalf("reject must not create usage records, got %d", got)
	}
	if _, set := ledger.available["veh-1"]; set {
		t.Fatalf("reject must not touch vehicle availability")
	}
	// 拒绝不广播事件，只有提交时那一条
	if events := bus.snapshot(); len(events) != 1 {
		t.Fatalf("expected only the request event, got %d", len(events))
	}
}

func TestConcurrentApproveRejectSingleWinner(t *testing.T) {
	for round := 0; round < 20; round++ {
		ledger := newMemLedger()
		svc := NewService(ledger, &captureBus{}, nil)

		id, _, err := svc.Request(context.Background(), "alice", "veh-1",
			"2026-09-01 09:00:00", "2026-09-01 17:00:00")
		if err != nil {
			t.Fatalf("Request: %v", err)
		}

		const n = 16
		results := make(chan bool, 2*n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				results <- svc.Approve(context.Background(), id)
			}()
			go func() {
				defer wg.Done()
				results <- svc.Reject(context.Background(), id)
			}()
		}
		wg.Wait()
		close(results)

		winners := 0
		for won := range results {
			if won {
				winners++
			}
		}
		if winners != 1 {
			t.Fatalf("round %d: expected exactly 1 winner, got %d", round, winners)
		}

		req, err := ledger.GetRequest(context.Background(), id)
		if err != nil {
			t.Fatalf("GetRequest: %v", err)
		}
		if !IsTerminal(req.Status) {
			t.Fatalf("round %d: request left in %s", round, req.Status)
		}
		wantUsage := 0
		if req.Status == StatusApproved {
			wantUsage = 1
		}
		if got := ledger.usageCount(); got != wantUsage {
			t.Fatalf("round %d: status=%s usage=%d, want %d", round, req.Status, got, wantUsage)
		}
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	svc := NewService(newMemLedger(), &captureBus{}, nil)
	if svc.Approve(context.Background(), "missing") {
		t.Fatalf("approve on unknown request must lose")
	}
	if svc.Reject(context.Background(), "missing") {
		t.Fatalf("reject on unknown request must lose")
	}
}

func TestBookDirect(t *testing.T) {
	ledger := newMemLedger()
	bus := &captureBus{}
	svc := NewService(ledger, bus, nil)

	if !svc.BookDirect(context.Background(), "bob", "veh-2",
		"2026-09-02 08:00:00", "2026-09-02 12:00:00") {
		t.Fatalf("BookDirect should succeed")
	}
	recs, err := svc.UsageHistory(context.Background(), "bob")
	if err != nil {
		t.Fatalf("UsageHistory: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 usage record, got %d", len(recs))
	}
	if recs[0].VehicleID != "veh-2" {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
	// 即时预订不走审批，也不产生事件
	if events := bus.snapshot(); len(events) != 0 {
		t.Fatalf("BookDirect must not emit events, got %d", len(events))
	}

	if svc.BookDirect(context.Background(), "", "veh-2",
		"2026-09-02 08:00:00", "2026-09-02 12:00:00") {
		t.Fatalf("BookDirect without username should fail")
	}
}
