package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macizomedia/editorBot/pkg/adapters/memory"
	"github.com/macizomedia/editorBot/pkg/domain"
	"github.com/macizomedia/editorBot/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunRecordStoreContract(t, memory.NewStore())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			rec := domain.NewRecord()
			_ = store.Save(ctx, "shared", &rec)
			_, _ = store.Load(ctx, "shared")
		}(i)
	}
	wg.Wait()

	rec, err := store.Load(ctx, "shared")
	assert.NoError(t, err)
	assert.Equal(t, domain.StateIdle, rec.State)
}
