package repository

import (
	"context"
	"sync"
	"testing"

	"library-backend/internal/domains/publisher/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, &model.Publisher{Name: "Acme", Email: strPtr("a@acme.io")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)

	got.Name = "Acme Inc"
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme Inc", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, created.ID))
	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryRepository_MissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	got, err := repo.GetByID(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.Update(ctx, &model.Publisher{ID: 99, Name: "Ghost"})
	assert.True(t, model.IsPublisherNotFound(err))

	assert.NoError(t, repo.Delete(ctx, 99))
}

func TestMemoryRepository_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first, _ := repo.Create(ctx, &model.Publisher{Name: "One"})
	require.NoError(t, repo.Delete(ctx, first.ID))
	second, _ := repo.Create(ctx, &model.Publisher{Name: "Two"})

	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryRepository_ListOrderedAndIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, &model.Publisher{Name: name})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, 2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "C", list[1].Name)

	list[0].Name = "mutated"
	again, _ := repo.GetByID(ctx, 1)
	assert.Equal(t, "A", again.Name)
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, &model.Publisher{Name: "P"})
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
	seen := make(map[int64]bool)
	for _, p := range list {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}
