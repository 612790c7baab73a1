package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"library-backend/internal/domains/publisher/model"
	"library-backend/pkg/cache"

	"github.com/rs/zerolog/log"
)

const (
	invalidateAttempts = 3
	invalidateBackoff  = 20 * time.Millisecond
)

// cachedRepository is a read-through cache in front of another repository.
// Only GetByID is cached; writes invalidate the key. Cache failures never fail a request.
//
// Every write bumps epoch before deleting the key, and a read only fills the cache if no
// write happened while it was loading. Ids whose key could not be deleted are kept in
// stale and read straight from the inner repository until the delete goes through.
type cachedRepository struct {
	inner RepositoryInterface
	cache cache.Cache
	ttl   time.Duration

	mu    sync.Mutex
	epoch uint64
	stale map[int64]struct{}
}

func NewCachedRepository(inner RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{
		inner: inner,
		cache: c,
		ttl:   ttl,
		stale: make(map[int64]struct{}),
	}
}

func publisherKey(id int64) string {
	return fmt.Sprintf("publisher:%d", id)
}

func (r *cachedRepository) Create(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	return r.inner.Create(ctx, pub)
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	key := publisherKey(id)

	r.mu.Lock()
	epoch := r.epoch
	_, isStale := r.stale[id]
	r.mu.Unlock()

	if isStale {
		if err := r.cache.Delete(ctx, key); err == nil {
			r.mu.Lock()
			delete(r.stale, id)
			r.mu.Unlock()
		}
		return r.inner.GetByID(ctx, id)
	}

	var cached model.Publisher
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publisher cache read failed")
	} else if found {
		return &cached, nil
	}

	pub, err := r.inner.GetByID(ctx, id)
	if err != nil || pub == nil {
		return pub, err
	}

	// Held across Set so a concurrent write either sees the filled key or makes us skip it
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch {
		return pub, nil
	}
	if err := r.cache.Set(ctx, key, pub, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publisher cache write failed")
	}
	return pub, nil
}

func (r *cachedRepository) List(ctx context.Context) ([]*model.Publisher, error) {
	return r.inner.List(ctx)
}

func (r *cachedRepository) Update(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	updated, err := r.inner.Update(ctx, pub)
	r.invalidate(ctx, pub.ID)
	return updated, err
}

func (r *cachedRepository) Delete(ctx context.Context, id int64) error {
	err := r.inner.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *cachedRepository) invalidate(ctx context.Context, id int64) {
	r.mu.Lock()
	r.epoch++
	r.mu.Unlock()

	key := publisherKey(id)
	var err error
	for attempt := 1; attempt <= invalidateAttempts; attempt++ {
		if err = r.cache.Delete(ctx, key); err == nil {
			return
		}
		if attempt < invalidateAttempts {
			select {
			case <-time.After(invalidateBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				attempt = invalidateAttempts
			}
		}
	}

	r.mu.Lock()
	r.stale[id] = struct{}{}
	r.mu.Unlock()

	log.Error().Err(err).Int64("publisher_id", id).Msg("publisher cache invalidation failed, bypassing cache for this id")
}
