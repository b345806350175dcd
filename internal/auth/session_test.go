package auth

import (
	"sync"
	"testing"
)

func TestBeginIsIdempotentPerUser(t *testing.T) {
	store := NewSessionStore()

	first := store.Begin("alice")
	second := store.Begin("alice")
	if first == "" {
		t.Fatalf("expected non-empty session id")
	}
	if first != second {
		t.Fatalf("expected same session id for repeated Begin, got %q and %q", first, second)
	}

	other := store.Begin("bob")
	if other == first {
		t.Fatalf("expected distinct session ids for distinct users")
	}
}

func TestConsumeIsSingleUse(t *testing.T) {
	store := NewSessionStore()
	id := store.Begin("alice")

	username, ok := store.Consume(id)
	if !ok || username != "alice" {
		t.Fatalf("expected first consume to yield alice, got %q ok=%v", username, ok)
	}
	if _, ok := store.Consume(id); ok {
		t.Fatalf("expected second consume of same id to fail")
	}

	// 消费后用户可以重新开启会话，且拿到新 id
	next := store.Begin("alice")
	if next == id {
		t.Fatalf("expected fresh session id after consume")
	}
}

func TestConsumeUnknownID(t *testing.T) {
	store := NewSessionStore()
	if _, ok := store.Consume("nope"); ok {
		t.Fatalf("expected consume of unknown id to fail")
	}
}

// 并发 Begin 同一用户必须收敛到同一个会话（check-then-insert 原子性）。
func TestBeginConcurrentSingleSessionInvariant(t *testing.T) {
	store := NewSessionStore()

	const n = 64
	ids := make([]string, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i] = store.Begin("alice")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("expected all concurrent Begin calls to return one id, got %q and %q", ids[0], ids[i])
		}
	}
	if store.Len() != 1 {
		t.Fatalf("expected exactly one live session, got %d", store.Len())
	}
}

// 已知限制：会话不按时间过期，只能被一次校验消费。
func TestSessionsDoNotExpireByTime(t *testing.T) {
	store := NewSessionStore()
	id := store.Begin("alice")

	if got := store.Begin("alice"); got != id {
		t.Fatalf("session should stay live until consumed, got new id %q", got)
	}
}
