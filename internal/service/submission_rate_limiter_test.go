package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestMemorySubmissionRateLimiter(t *testing.T) {
	l := NewSubmissionRateLimiter(time.Minute, 2).(*memorySubmissionRateLimiter)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("acc-1") || !l.Allow("acc-1") {
		t.Fatalf("expected first two submissions to pass")
	}
	if l.Allow("acc-1") {
		t.Fatalf("expected third submission in window to be rejected")
	}
	if !l.Allow("acc-2") {
		t.Fatalf("limits are per key")
	}
	if l.Allow("  ") {
		t.Fatalf("expected empty key to be rejected")
	}

	now = now.Add(61 * time.Second)
	if !l.Allow("acc-1") {
		t.Fatalf("expected window to slide")
	}
}

func TestRedisSubmissionRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisSubmissionRateLimiter
		if !l.Allow("acc-1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisSubmissionRateLimiter{client: &mockRedisEvaler{result: 1}, window: time.Minute, max: 3, prefix: "belbin:submit:"}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 3}
		l := &redisSubmissionRateLimiter{client: mock, window: time.Hour, max: 3, prefix: "belbin:submit:"}
		if !l.Allow(" acc-1 ") {
			t.Fatalf("expected allow when count <= max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "belbin:submit:acc-1" {
			t.Fatalf("unexpected key, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 3600 {
			t.Fatalf("expected TTL seconds=3600, got %+v", mock.lastArgs)
		}
		if mock.lastScript != redisSubmissionAllowScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisSubmissionRateLimiter{client: &mockRedisEvaler{result: 4}, window: time.Minute, max: 3, prefix: "belbin:submit:"}
		if l.Allow("acc-1") {
			t.Fatalf("expected deny when count > max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisSubmissionRateLimiter{client: &mockRedisEvaler{err: errors.New("redis down")}, window: time.Minute, max: 3, prefix: "belbin:submit:"}
		if !l.Allow("acc-1") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})
}
