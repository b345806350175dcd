package notify

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeConn 记录写入的消息；fail 置位后所有写操作报错。
type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	fail     bool
	closed   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("connection closed")
	}
	if messageType == websocket.TextMessage {
		cp := make([]byte, len(data))
		copy(cp, data)
		f.messages = append(f.messages, cp)
	}
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) texts() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.messages))
	copy(out, f.messages)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub(8, time.Second, nil)
	a, b := &fakeConn{}, &fakeConn{}
	hub.Subscribe(a)
	hub.Subscribe(b)

	hub.Broadcast(VehicleDeletedEvent("7"))

	waitFor(t, func() bool { return len(a.texts()) == 1 && len(b.texts()) == 1 })

	var got Event
	if err := json.Unmarshal(a.texts()[0], &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Action != ActionVehicleDeleted || got.VehicleID != "7" {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestBroadcastRemovesDeadConnection(t *testing.T) {
	hub := NewHub(8, time.Second, nil)
	healthy1, healthy2 := &fakeConn{}, &fakeConn{}
	dead := &fakeConn{fail: true}

	hub.Subscribe(healthy1)
	hub.Subscribe(dead)
	hub.Subscribe(healthy2)

	// 不 panic、不向调用方抛错
	hub.Broadcast(ApproveBookingRequestEvent("42"))

	waitFor(t, func() bool {
		return len(healthy1.texts()) == 1 && len(healthy2.texts()) == 1 && hub.Count() == 2
	})
	if got := len(dead.texts()); got != 0 {
		t.Fatalf("dead connection should receive nothing, got %d", got)
	}
}

func TestPerConnectionOrdering(t *testing.T) {
	hub := NewHub(64, time.Second, nil)
	conn := &fakeConn{}
	hub.Subscribe(conn)

	const n = 20
	for i := 0; i < n; i++ {
		hub.Broadcast(NewBookingRequestEvent("alice", "v1", "2024-06-01 10:00:00", "2024-06-01 12:00:00"))
		hub.Broadcast(VehicleDeletedEvent("v1"))
	}

	waitFor(t, func() bool { return len(conn.texts()) == 2*n })

	msgs := conn.texts()
	for i, raw := range msgs {
		var e Event
		if err := json.Unmarshal(raw, &e); err != nil {
			t.Fatalf("unmarshal msg %d: %v", i, err)
		}
		want := ActionNewBookingRequest
		if i%2 == 1 {
			want = ActionVehicleDeleted
		}
		if e.Action != want {
			t.Fatalf("msg %d: expected action %s, got %s", i, want, e.Action)
		}
	}
}

func TestSubscribeIsIdempotentPerConnection(t *testing.T) {
	hub := NewHub(8, time.Second, nil)
	conn := &fakeConn{}

	c1 := hub.Subscribe(conn)
	c2 := hub.Subscribe(conn) // 同一条连接重复登记

	if c1 != c2 {
		t.Fatalf("re-subscribe must return the existing client")
	}
	if hub.Count() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.Count())
	}

	hub.Broadcast(VehicleDeletedEvent("7"))
	waitFor(t, func() bool { return len(conn.texts()) >= 1 })
	time.Sleep(20 * time.Millisecond)
	if got := len(conn.texts()); got != 1 {
		t.Fatalf("want 1 delivery, got %d", got)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub(8, time.Second, nil)
	conn := &fakeConn{}
	c := hub.Subscribe(conn)

	hub.Unsubscribe(c)
	hub.Unsubscribe(c) // 重复退订不崩
	if hub.Count() != 0 {
		t.Fatalf("expected empty hub, got %d", hub.Count())
	}

	// 退订后的广播不会再投递
	hub.Broadcast(VehicleDeletedEvent("1"))
	time.Sleep(20 * time.Millisecond)
	if len(conn.texts()) != 0 {
		t.Fatalf("unsubscribed connection must not receive events")
	}
}

func TestConcurrentSubscribeUnsubscribeDuringBroadcast(t *testing.T) {
	hub := NewHub(8, time.Second, nil)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				hub.Broadcast(VehicleDeletedEvent("x"))
			}
		}
	}()

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c := hub.Subscribe(&fakeConn{})
				hub.Unsubscribe(c)
			}
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(stop)
	wg.Wait()

	if hub.Count() != 0 {
		t.Fatalf("expected all transient subscribers removed, got %d", hub.Count())
	}
}

func TestEventEncodingShapes(t *testing.T) {
	raw := NewBookingRequestEvent("bob", "9", "2024-06-01 10:00:00", "2024-06-01 12:00:00").Encode()

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["action"] != "newBookingRequest" || m["username"] != "bob" || m["vehicleId"] != "9" {
		t.Fatalf("unexpected payload: %v", m)
	}
	// 与该事件无关的字段不出现
	if _, ok := m["make"]; ok {
		t.Fatalf("unexpected make field in booking event")
	}

	raw = ApproveBookingRequestEvent("9").Encode()
	m = map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["action"] != "approveBookingRequest" || m["vehicleId"] != "9" {
		t.Fatalf("unexpected payload: %v", m)
	}
	if _, ok := m["username"]; ok {
		t.Fatalf("approve event must not carry username")
	}
}
