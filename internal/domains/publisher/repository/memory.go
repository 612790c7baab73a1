package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"library-backend/internal/domains/publisher/model"
)

// memoryRepository keeps publishers in a map. Used for local runs without PostgreSQL and in tests.
type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*model.Publisher
	now    func() time.Time
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		items: make(map[int64]*model.Publisher),
		now:   time.Now,
	}
}

func (r *memoryRepository) Create(_ context.Context, pub *model.Publisher) (*model.Publisher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// IDs only grow, a deleted ID is never handed out again
	r.nextID++
	stored := pub.Clone()
	stored.ID = r.nextID
	stored.CreatedAt = r.now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.items[stored.ID] = stored

	return stored.Clone(), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*model.Publisher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pub, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return pub.Clone(), nil
}

func (r *memoryRepository) List(_ context.Context) ([]*model.Publisher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	publishers := make([]*model.Publisher, 0, len(r.items))
	for _, pub := range r.items {
		publishers = append(publishers, pub.Clone())
	}
	sort.Slice(publishers, func(i, j int) bool {
		return publishers[i].ID < publishers[j].ID
	})
	return publishers, nil
}

func (r *memoryRepository) Update(_ context.Context, pub *model.Publisher) (*model.Publisher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[pub.ID]
	if !ok {
		return nil, model.NewPublisherNotFound(pub.ID)
	}

	stored := pub.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.now().UTC()
	r.items[stored.ID] = stored

	return stored.Clone(), nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
