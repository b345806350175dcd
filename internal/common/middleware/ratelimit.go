package middleware

import (
	"context"
	"sync"
	"time"
)

// RateLimiter 限流器接口。Allow 返回 false 表示本次请求被限流。
type RateLimiter interface {
	Allow(ctx context.Context) bool
}

// TokenBucket 令牌桶限流器。
// 令牌数用浮点累积：低速率（比如每秒个位数）下两次请求间隔不足一个
// 令牌时不会把零头丢掉。
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64 // 每秒补充的令牌数
	lastRefill time.Time
}

// NewTokenBucket 创建令牌桶，初始时桶是满的。
func NewTokenBucket(capacity, refillRate int64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: float64(refillRate),
		lastRefill: time.Now(),
	}
}

// Allow 取一个令牌。桶空则拒绝。
func (tb *TokenBucket) Allow(ctx context.Context) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
	tb.lastRefill = now

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// SlidingWindow 滑动窗口限流器：窗口内请求数封顶。
// 被拒绝的请求不计入窗口。
type SlidingWindow struct {
	mu          sync.Mutex
	requests    []time.Time
	window      time.Duration
	maxRequests int
}

// NewSlidingWindow 创建滑动窗口限流器
func NewSlidingWindow(window time.Duration, maxRequests int) *SlidingWindow {
	return &SlidingWindow{
		window:      window,
		maxRequests: maxRequests,
	}
}

// Allow 检查窗口内请求数是否超限。
func (sw *SlidingWindow) Allow(ctx context.Context) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	windowStart := time.Now().Add(-sw.window)

	// 窗口内请求按时间递增，找到第一个还在窗口里的，前面的整段丢掉
	cut := 0
	for cut < len(sw.requests) && !sw.requests[cut].After(windowStart) {
		cut++
	}
	if cut > 0 {
		sw.requests = append(sw.requests[:0], sw.requests[cut:]...)
	}

	if len(sw.requests) >= sw.maxRequests {
		return false
	}
	sw.requests = append(sw.requests, time.Now())
	return true
}
