package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !rl.allow(ctx, "10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	if rl.allow(ctx, "10.0.0.1") {
		t.Error("attempt over the limit should be blocked")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if !rl.allow(ctx, "10.0.0.1") {
		t.Fatal("first attempt from first IP should be allowed")
	}
	if rl.allow(ctx, "10.0.0.1") {
		t.Error("second attempt from first IP should be blocked")
	}
	if !rl.allow(ctx, "10.0.0.2") {
		t.Error("first attempt from second IP should be allowed")
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	rl, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if !rl.allow(ctx, "10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if rl.allow(ctx, "10.0.0.1") {
		t.Fatal("second attempt should be blocked")
	}

	mr.FastForward(2 * time.Minute)

	if !rl.allow(ctx, "10.0.0.1") {
		t.Error("attempt after window expiry should be allowed")
	}
}

func TestRateLimiterFailsOpenWhenRedisDown(t *testing.T) {
	rl, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	mr.Close()

	for i := 0; i < 5; i++ {
		if !rl.allow(ctx, "10.0.0.1") {
			t.Fatal("limiter should fail open when redis is unreachable")
		}
	}
}

func TestRateLimiterReset(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	rl.allow(ctx, "10.0.0.1")
	if rl.allow(ctx, "10.0.0.1") {
		t.Fatal("second attempt should be blocked")
	}

	if err := rl.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if !rl.allow(ctx, "10.0.0.1") {
		t.Error("attempt after reset should be allowed")
	}
}
