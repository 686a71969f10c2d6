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
	"github.com/macizomedia/editorBot/pkg/domain"
	"github.com/macizomedia/editorBot/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redisadapter.Option) (*redisadapter.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisadapter.NewFromClient(client, opts...), mr
}

func TestStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunRecordStoreContract(t, store)
}

func TestStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redisadapter.WithTTL(time.Minute))
	ctx := context.Background()

	rec := domain.NewRecord()
	require.NoError(t, store.Save(ctx, "ephemeral", &rec))

	_, err := store.Load(ctx, "ephemeral")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "ephemeral")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// The index prunes lazily on List.
	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, sessions, "ephemeral")
}

func TestStore_NoTTLSurvivesTime(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	rec := domain.NewRecord()
	require.NoError(t, store.Save(ctx, "durable", &rec))

	mr.FastForward(24 * time.Hour)

	_, err := store.Load(ctx, "durable")
	assert.NoError(t, err)

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, sessions, "durable")
}

func TestStore_CustomPrefixIsolation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	a := redisadapter.NewFromClient(client, redisadapter.WithPrefix("a:"))
	b := redisadapter.NewFromClient(client, redisadapter.WithPrefix("b:"))
	ctx := context.Background()

	rec := domain.NewRecord()
	require.NoError(t, a.Save(ctx, "s1", &rec))

	_, err := b.Load(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
