package callslots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimeProvider провайдер времени с ручным управлением
type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

func newTestLimiter(t *testing.T, maxCalls int, ttl time.Duration) (*Limiter, *fakeTimeProvider) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewLimiter(client, maxCalls, ttl)
	clock := &fakeTimeProvider{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	limiter.timeProvider = clock

	return limiter, clock
}

func TestLimiter_AcquireRelease(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, 5*time.Minute)
	ctx := context.Background()

	ok, err := limiter.Acquire(ctx, 1, "call-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Acquire(ctx, 1, "call-2")
	require.NoError(t, err)
	assert.True(t, ok)

	// третий звонок не влезает
	ok, err = limiter.Acquire(ctx, 1, "call-3")
	require.NoError(t, err)
	assert.False(t, ok)

	active, err := limiter.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, active)

	require.NoError(t, limiter.Release(ctx, 1, "call-1"))

	ok, err = limiter.Acquire(ctx, 1, "call-3")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiter_RestaurantsIsolated(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 5*time.Minute)
	ctx := context.Background()

	ok, err := limiter.Acquire(ctx, 1, "call-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// лимит первого ресторана не влияет на второй
	ok, err = limiter.Acquire(ctx, 2, "call-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiter_StaleCallsExpire(t *testing.T) {
	limiter, clock := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	ok, err := limiter.Acquire(ctx, 1, "stuck-call")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Acquire(ctx, 1, "call-2")
	require.NoError(t, err)
	assert.False(t, ok)

	// зависший звонок протухает и освобождает слот
	clock.now = clock.now.Add(2 * time.Minute)

	ok, err = limiter.Acquire(ctx, 1, "call-2")
	require.NoError(t, err)
	assert.True(t, ok)

	active, err := limiter.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}
