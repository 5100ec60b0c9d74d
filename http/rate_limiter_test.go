package http

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_ExhaustsBudget(t *testing.T) {

	limiter := NewMemoryLimiter(3, time.Minute)
	defer limiter.Stop()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if !limiter.Allow(ctx, "10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow(ctx, "10.0.0.1") {
		t.Error("request over capacity should be denied")
	}

	// A different client has its own bucket.
	if !limiter.Allow(ctx, "10.0.0.2") {
		t.Error("separate client should be allowed")
	}
}
