package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mazabin/bookshop/internal/domains/author"
	"github.com/mazabin/bookshop/pkg/cache"
	"github.com/mazabin/bookshop/pkg/logger"
)

const authorCacheKeyPrefix = "author:"

// redeleteDelay is how long after a write the key is invalidated a second
// time. A GetByID that read the old row before the write committed may
// still Set it after the first invalidation.
const redeleteDelay = 500 * time.Millisecond

// cachedRepository puts a read-through cache in front of GetByID.
// Cache failures are logged and never fail the call.
type cachedRepository struct {
	author.Repository
	cache    cache.Cache
	ttl      time.Duration
	redelete time.Duration
	log      zerolog.Logger
}

// NewCachedRepository decorates inner with a read cache for single authors.
func NewCachedRepository(inner author.Repository, c cache.Cache, ttl time.Duration) author.Repository {
	return &cachedRepository{
		Repository: inner,
		cache:      c,
		ttl:        ttl,
		redelete:   redeleteDelay,
		log:        logger.Component("author_cache"),
	}
}

func cacheKey(id uuid.UUID) string {
	return authorCacheKeyPrefix + id.String()
}

func (r *cachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	key := cacheKey(id)

	var cached author.Author
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if found {
		return &cached, nil
	}

	a, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, a, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return a, nil
}

func (r *cachedRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	updated, err := r.Repository.Update(ctx, a)
	r.invalidateAfterWrite(ctx, a.ID)
	return updated, err
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.Repository.Delete(ctx, id)
	r.invalidateAfterWrite(ctx, id)
	return err
}

// invalidateAfterWrite drops the key now and once more after r.redelete.
// A reader slower than r.redelete can still leave a stale entry until ttl.
func (r *cachedRepository) invalidateAfterWrite(ctx context.Context, id uuid.UUID) {
	r.invalidate(ctx, id)

	bg := context.WithoutCancel(ctx)
	time.AfterFunc(r.redelete, func() { r.invalidate(bg, id) })
}

func (r *cachedRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		r.log.Warn().Err(err).Str("key", cacheKey(id)).Msg("cache invalidation failed")
	}
}
