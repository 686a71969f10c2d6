package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "github.com/macizomedia/editorBot/pkg/adapters/redis"
)

func newTestLocker(t *testing.T) (*redisadapter.Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisadapter.NewLocker(client, "test:"), mr
}

func TestLocker_AcquireAndRelease(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:lock:session-1"))

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("test:lock:session-1"))
}

func TestLocker_SecondAcquireBlocksUntilTimeout(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session-1", time.Minute)
	require.NoError(t, err)
	defer func() { _ = unlock(ctx) }()

	shortCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(shortCtx, "session-1", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocker_ReleaseIsValueChecked(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session-1", time.Minute)
	require.NoError(t, err)

	// Another holder took over (e.g. after TTL expiry); our release must not
	// delete their lock.
	mr.Set("test:lock:session-1", "someone-else")

	require.NoError(t, unlock(ctx))
	assert.True(t, mr.Exists("test:lock:session-1"))
}

func TestLocker_IndependentKeys(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, "session-a", time.Minute)
	require.NoError(t, err)
	defer func() { _ = unlockA(ctx) }()

	unlockB, err := locker.Lock(ctx, "session-b", time.Minute)
	require.NoError(t, err)
	defer func() { _ = unlockB(ctx) }()
}
