package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	counters map[string]int64
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{counters: make(map[string]int64)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.counters, key)
	return nil
}

func TestApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 5, 0, time.UTC)

	t.Run("Allows Until Quota Exhausted", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
		in := &ApplyResourceLimiterInput{
			ResourceName:      "10.0.0.1",
			LimiterGroupName:  "record-mutation",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            now,
		}

		for i := 0; i < 2; i++ {
			out, err := limiter.ApplyResourceLimiter(ctx, in)
			assert.NoError(t, err)
			assert.True(t, out.Allowed, "request %d should be within quota", i+1)
		}

		out, err := limiter.ApplyResourceLimiter(ctx, in)
		assert.NoError(t, err)
		assert.False(t, out.Allowed, "third request should exceed the quota")
		assert.Greater(t, out.RetryAfterSecs, 0)
	})

	t.Run("Zero Quota Disables Limiting", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:      "10.0.0.1",
			LimiterGroupName:  "record-mutation",
			WindowDurationSec: 60,
			MaxQuota:          0,
			NowUTC:            now,
		})

		assert.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("Blank Resource Is Denied", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:      "   ",
			LimiterGroupName:  "record-mutation",
			WindowDurationSec: 60,
			MaxQuota:          5,
			NowUTC:            now,
		})

		assert.NoError(t, err)
		assert.False(t, out.Allowed)
	})

	t.Run("Nil Input Is An Error", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())

		out, err := limiter.ApplyResourceLimiter(ctx, nil)

		assert.Error(t, err)
		assert.False(t, out.Allowed)
	})
}
