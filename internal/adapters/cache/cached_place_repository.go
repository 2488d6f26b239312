package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/yemitan/staylodge/internal/domain/entities"
	"github.com/yemitan/staylodge/internal/domain/providers"
	"github.com/yemitan/staylodge/internal/domain/repositories"
)

// placeByIDTTL is the cache lifetime of a single place, in seconds.
const placeByIDTTL = 300

// CachedPlaceRepository wraps a PlaceRepository with a read-through
// cache on single-place lookups. Mutations invalidate the cached
// entry; absence is never cached.
type CachedPlaceRepository struct {
	repo  repositories.PlaceRepository
	cache providers.CacheProvider
}

// NewCachedPlaceRepository creates a new cached place repository
func NewCachedPlaceRepository(repo repositories.PlaceRepository, cache providers.CacheProvider) repositories.PlaceRepository {
	return &CachedPlaceRepository{
		repo:  repo,
		cache: cache,
	}
}

func placeCacheKey(id string) string {
	return fmt.Sprintf("place:%s", id)
}

// Add stores a place and drops any stale cached entry for its id
func (r *CachedPlaceRepository) Add(ctx context.Context, place *entities.Place) error {
	if err := r.repo.Add(ctx, place); err != nil {
		return err
	}
	r.invalidate(ctx, place.ID)
	return nil
}

// GetByID retrieves a place by ID, serving from cache when possible
func (r *CachedPlaceRepository) GetByID(ctx context.Context, id string) (*entities.Place, error) {
	cacheKey := placeCacheKey(id)

	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var place entities.Place
		if err := json.Unmarshal(cached, &place); err == nil {
			return &place, nil
		}
		log.Warn().Str("place_id", id).Msg("failed to unmarshal cached place")
	}

	place, err := r.repo.GetByID(ctx, id)
	if err != nil || place == nil {
		return place, err
	}

	if data, err := json.Marshal(place); err == nil {
		if err := r.cache.Set(ctx, cacheKey, data, placeByIDTTL); err != nil {
			log.Warn().Err(err).Str("place_id", id).Msg("failed to cache place")
		}
	}

	return place, nil
}

// List retrieves all places; lists are not cached
func (r *CachedPlaceRepository) List(ctx context.Context) ([]*entities.Place, error) {
	return r.repo.List(ctx)
}

// Update stores the mutated place back and invalidates its cache entry
func (r *CachedPlaceRepository) Update(ctx context.Context, place *entities.Place) error {
	if err := r.repo.Update(ctx, place); err != nil {
		return err
	}
	r.invalidate(ctx, place.ID)
	return nil
}

// Delete removes a place and invalidates its cache entry
func (r *CachedPlaceRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedPlaceRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, placeCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("place_id", id).Msg("failed to invalidate cached place")
	}
}
