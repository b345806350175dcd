package middleware

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	ctx := context.Background()
	boom := errors.New("backend down")

	for i := 0; i < 3; i++ {
		if err := cb.Call(ctx, func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("call %d: got %v, want %v", i, err, boom)
		}
	}
	if cb.GetState() != StateOpen {
		t.Fatalf("breaker should be open after %d failures", 3)
	}

	// 熔断打开后直接拒绝，不再调用后端
	called := false
	err := cb.Call(ctx, func() error { called = true; return nil })
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("open breaker should return ErrCircuitOpen, got %v", err)
	}
	if called {
		t.Fatalf("open breaker must not invoke the function")
	}
}

func TestCircuitBreakerRecovers(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 20*time.Millisecond)
	ctx := context.Background()

	_ = cb.Call(ctx, func() error { return errors.New("boom") })
	if cb.GetState() != StateOpen {
		t.Fatalf("breaker should open after first failure")
	}

	time.Sleep(30 * time.Millisecond)

	// 半开状态下的成功调用恢复为关闭
	if err := cb.Call(ctx, func() error { return nil }); err != nil {
		t.Fatalf("half-open call should pass: %v", err)
	}
	if cb.GetState() != StateClosed {
		t.Fatalf("breaker should close after successful probe")
	}
}
