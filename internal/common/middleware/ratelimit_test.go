package middleware

import (
	"context"
	"testing"
	"time"
)

func TestTokenBucketBurstThenDeny(t *testing.T) {
	tb := NewTokenBucket(3, 1)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !tb.Allow(ctx) {
			t.Fatalf("request %d within capacity should pass", i)
		}
	}
	if tb.Allow(ctx) {
		t.Fatalf("request beyond capacity should be denied")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(1, 10)
	ctx := context.Background()

	if !tb.Allow(ctx) {
		t.Fatalf("first request should pass")
	}
	if tb.Allow(ctx) {
		t.Fatalf("bucket should be empty")
	}

	time.Sleep(150 * time.Millisecond)
	if !tb.Allow(ctx) {
		t.Fatalf("bucket should have refilled")
	}
}
