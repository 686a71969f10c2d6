package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macizomedia/editorBot/pkg/domain"
)

// RunRecordStoreContract verifies that a RecordStore implementation adheres
// to the interface contract. Adapter test files call it against their own
// setup (in-memory, miniredis, ...).
func RunRecordStoreContract(t *testing.T, store RecordStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		rec := domain.NewRecord()
		rec.State = domain.StateTranscribed
		rec.Transcript = "hola mundo"

		err := store.Save(ctx, sessionID, &rec)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.StateTranscribed, loaded.State)
		assert.Equal(t, "hola mundo", loaded.Transcript)
	})

	t.Run("Replace Wholesale", func(t *testing.T) {
		rec := domain.NewRecord()
		rec.State = domain.StateMediated
		rec.MediatedText = "texto mediado"
		require.NoError(t, store.Save(ctx, sessionID, &rec))

		reset := domain.NewRecord()
		require.NoError(t, store.Save(ctx, sessionID, &reset))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, domain.StateIdle, loaded.State)
		assert.Empty(t, loaded.MediatedText, "old fields must not survive a replace")
	})

	t.Run("Load Isolation", func(t *testing.T) {
		rec := domain.NewRecord()
		rec.FinalScript = &domain.Script{Beats: []domain.Beat{{Text: "a", DurationSeconds: 2}}}
		require.NoError(t, store.Save(ctx, sessionID, &rec))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.FinalScript.Beats[0].Text = "mutated"

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "a", again.FinalScript.Beats[0].Text, "caller mutation must not leak into the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := domain.NewRecord()
		require.NoError(t, store.Save(ctx, sessionID, &rec))

		require.NoError(t, store.Delete(ctx, sessionID))

		_, err := store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		rec := domain.NewRecord()
		_ = store.Save(ctx, id1, &rec)
		_ = store.Save(ctx, id2, &rec)

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
