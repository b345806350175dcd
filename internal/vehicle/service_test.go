package vehicle

import (
	"context"
	"sync"
	"testing"

	"github.com/CarConnect/CarConnect/internal/notify"
)

// memStore 内存版 Store，测试用。
type memStore struct {
	mu       sync.Mutex
	vehicles map[string]*Vehicle
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{vehicles: make(map[string]*Vehicle)}
}

func (m *memStore) Create(_ context.Context, v *Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *v
	m.vehicles[v.ID] = &cp
	return nil
}

func (m *memStore) FindByID(_ context.Context, id string) (*Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vehicles[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}
	cp := *v
	return &cp, nil
}

func (m *memStore) Update(_ context.Context, id, make, model string, year int, location string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vehicles[id]
	if !ok {
		return false, nil
	}
	v.Make, v.Model, v.Year, v.Location = make, model, year, location
	return true, nil
}

func (m *memStore) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[id]; !ok {
		return false, nil
	}
	delete(m.vehicles, id)
	return true, nil
}

func (m *memStore) Search(_ context.Context, c SearchCriteria) ([]Vehicle, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Vehicle, 0)
	for _, v := range m.vehicles {
		if c.Make != "" && v.Make != c.Make {
			continue
		}
		if c.OnlyAvailable && !v.Available {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (m *memStore) IsOwner(_ context.Context, username, vehicleID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vehicles[vehicleID]
	return ok && v.OwnerUsername == username, nil
}

// captureBus 记录广播的事件。
type captureBus struct {
	mu     sync.Mutex
	events []notify.Event
}

func (c *captureBus) Broadcast(e notify.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureBus) all() []notify.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]notify.Event, len(c.events))
	copy(out, c.events)
	return out
}

func TestRegisterEmitsVehicleAdded(t *testing.T) {
	store := newMemStore()
	bus := &captureBus{}
	svc := NewService(store, bus, nil)
	ctx := context.Background()

	v, err := svc.Register(ctx, RegisterInput{
		OwnerUsername: "alice",
		Make:          "VW",
		Model:         "Golf",
		Year:          2019,
		Location:      "Berlin",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !v.Available {
		t.Fatalf("new vehicle must start available")
	}

	events := bus.all()
	if len(events) != 1 || events[0].Action != notify.ActionVehicleAdded {
		t.Fatalf("expected one vehicleAdded event, got %+v", events)
	}
	if events[0].VehicleID != v.ID || events[0].Make != "VW" {
		t.Fatalf("unexpected event payload: %+v", events[0])
	}
}

func TestUpdateRequiresOwnership(t *testing.T) {
	store := newMemStore()
	bus := &captureBus{}
	svc := NewService(store, bus, nil)
	ctx := context.Background()

	v, err := svc.Register(ctx, RegisterInput{OwnerUsername: "alice", Make: "VW", Model: "Golf", Year: 2019})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	bus.events = nil

	ok, err := svc.Update(ctx, "mallory", v.ID, "VW", "Polo", 2020, "Hamburg")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ok {
		t.Fatalf("non-owner update must be rejected")
	}
	if len(bus.all()) != 0 {
		t.Fatalf("rejected update must not broadcast")
	}

	ok, err = svc.Update(ctx, "alice", v.ID, "VW", "Polo", 2020, "Hamburg")
	if err != nil || !ok {
		t.Fatalf("owner update should succeed, ok=%v err=%v", ok, err)
	}
	events := bus.all()
	if len(events) != 1 || events[0].Action != notify.ActionVehicleUpdated {
		t.Fatalf("expected one vehicleUpdated event, got %+v", events)
	}

	got, err := store.FindByID(ctx, v.ID)
	if err != nil || got.Model != "Polo" || got.Location != "Hamburg" {
		t.Fatalf("update not persisted: %+v err=%v", got, err)
	}
}

func TestDeleteRequiresOwnership(t *testing.T) {
	store := newMemStore()
	bus := &captureBus{}
	svc := NewService(store, bus, nil)
	ctx := context.Background()

	v, err := svc.Register(ctx, RegisterInput{OwnerUsername: "alice", Make: "BMW", Model: "i3", Year: 2021})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	bus.events = nil

	if ok, _ := svc.Delete(ctx, "mallory", v.ID); ok {
		t.Fatalf("non-owner delete must be rejected")
	}
	if ok, _ := svc.Delete(ctx, "alice", v.ID); !ok {
		t.Fatalf("owner delete should succeed")
	}
	events := bus.all()
	if len(events) != 1 || events[0].Action != notify.ActionVehicleDeleted || events[0].VehicleID != v.ID {
		t.Fatalf("expected one vehicleDeleted event, got %+v", events)
	}
	if _, err := store.FindByID(ctx, v.ID); err == nil {
		t.Fatalf("vehicle should be gone")
	}
}

func TestSearchOnlyAvailable(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, nil, nil)
	ctx := context.Background()

	a, _ := svc.Register(ctx, RegisterInput{OwnerUsername: "alice", Make: "VW", Model: "Golf", Year: 2019})
	b, _ := svc.Register(ctx, RegisterInput{OwnerUsername: "bob", Make: "VW", Model: "Polo", Year: 2018})
	_ = a

	// 模拟审批流程把 b 置为不可用
	store.mu.Lock()
	store.vehicles[b.ID].Available = false
	store.mu.Unlock()

	vs, total, err := svc.Search(ctx, SearchCriteria{Make: "VW", OnlyAvailable: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if total != 1 || len(vs) != 1 || vs[0].ID != a.ID {
		t.Fatalf("expected only the available vehicle, got %+v", vs)
	}
}
