package ratelimiter_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type storeFactory func(t *testing.T, clock *fakeClock) ratelimiter.Store

func newMemoryStore(t *testing.T, clock *fakeClock) ratelimiter.Store {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clock.Now), ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	return store
}

// stores lists every Store implementation; bucket behavior must not depend on it.
var stores = []struct {
	name string
	new  storeFactory
}{
	{"memory", newMemoryStore},
	{"redis", newRedisStore},
}

// eachStore runs fn once per Store implementation with a fresh clock.
func eachStore(t *testing.T, cfg ratelimiter.Config, fn func(t *testing.T, clock *fakeClock, b *ratelimiter.Bucket)) {
	t.Helper()
	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()
			clock := newFakeClock()
			b, err := ratelimiter.NewBucket(s.new(t, clock), cfg)
			require.NoError(t, err)
			fn(t, clock, b)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second}},
		{"zero rate", ratelimiter.Config{Capacity: 1, RefillRate: 0, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucket_BurstAndRefill(t *testing.T) {
	t.Parallel()
	eachStore(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Minute}, func(t *testing.T, clock *fakeClock, b *ratelimiter.Bucket) {
		ctx := context.Background()

		for want := 2; want >= 0; want-- {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.WithinDuration(t, clock.Now().Add(time.Minute), res.ResetAt, 0)
		assert.Equal(t, time.Minute, res.RetryAfter(clock.Now()))

		clock.Advance(time.Minute)
		res, err = b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})
}

func TestBucket_DeniedRequestsDoNotConsume(t *testing.T) {
	t.Parallel()
	eachStore(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute}, func(t *testing.T, clock *fakeClock, b *ratelimiter.Bucket) {
		ctx := context.Background()

		res, _ := b.Allow(ctx, "k")
		require.True(t, res.Allowed())
		for range 5 {
			res, _ = b.Allow(ctx, "k")
			require.False(t, res.Allowed())
			assert.Equal(t, -1, res.Remaining)
		}

		clock.Advance(time.Minute)
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})
}

func TestBucket_PartialIntervalsCarryOver(t *testing.T) {
	t.Parallel()
	eachStore(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute}, func(t *testing.T, clock *fakeClock, b *ratelimiter.Bucket) {
		ctx := context.Background()

		res, _ := b.Allow(ctx, "k")
		assert.Equal(t, 1, res.Remaining)

		clock.Advance(30 * time.Second)
		res, _ = b.Allow(ctx, "k")
		assert.Equal(t, 0, res.Remaining)

		clock.Advance(30 * time.Second)
		res, _ = b.Allow(ctx, "k")
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})
}

func TestBucket_RefillCappedAtCapacity(t *testing.T) {
	t.Parallel()
	eachStore(t, ratelimiter.Config{Capacity: 5, RefillRate: 2, RefillInterval: time.Second}, func(t *testing.T, clock *fakeClock, b *ratelimiter.Bucket) {
		ctx := context.Background()

		_, err := b.AllowN(ctx, "k", 5)
		require.NoError(t, err)

		clock.Advance(time.Hour)
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 4, res.Remaining)
	})
}

func TestBucket_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	eachStore(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute}, func(t *testing.T, _ *fakeClock, b *ratelimiter.Bucket) {
		ctx := context.Background()

		a, _ := b.Allow(ctx, "a")
		c, _ := b.Allow(ctx, "b")
		assert.True(t, a.Allowed())
		assert.True(t, c.Allowed())
	})
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()
	eachStore(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute, KeyPrefix: "rl"}, func(t *testing.T, _ *fakeClock, b *ratelimiter.Bucket) {
		ctx := context.Background()

		_, _ = b.Allow(ctx, "k")
		res, _ := b.Allow(ctx, "k")
		require.False(t, res.Allowed())

		require.NoError(t, b.Reset(ctx, "k"))
		res, _ = b.Allow(ctx, "k")
		assert.True(t, res.Allowed())
	})
}

func TestBucket_InvalidTokenCount(t *testing.T) {
	t.Parallel()
	b, err := ratelimiter.NewBucket(newMemoryStore(t, newFakeClock()), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	require.NoError(t, err)
	_, err = b.AllowN(context.Background(), "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestBucket_Concurrent(t *testing.T) {
	t.Parallel()
	eachStore(t, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour}, func(t *testing.T, _ *fakeClock, b *ratelimiter.Bucket) {
		var (
			wg      sync.WaitGroup
			allowed atomic.Int32
		)
		for range 200 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := b.Allow(context.Background(), "shared")
				if err == nil && res.Allowed() {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(50), allowed.Load())
	})
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	store.Close()
	store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := store.ConsumeTokens(ctx, "k", 1, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	assert.ErrorIs(t, err, context.Canceled)
}
