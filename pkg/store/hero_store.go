package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/startrack-app/startrack/pkg/cache"
	"github.com/startrack-app/startrack/pkg/common/structs"
)

// heroesCacheKey is the canonical key for the persisted hero catalog. The
// v1 suffix tracks the key namespace, not the envelope schema version.
const heroesCacheKey = "startrack.heroes.v1"

// HeroStore persists the versioned hero catalog envelope.
type HeroStore struct {
	cache cache.Cache
}

func newHeroStore(c cache.Cache) *HeroStore {
	return &HeroStore{cache: c}
}

func (s *HeroStore) GetHeroesCache(ctx context.Context) (*structs.HeroesCache, error) {
	raw, found, err := s.cache.Get(ctx, heroesCacheKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read heroes cache: %w", err)
	}
	if !found {
		return nil, nil
	}

	var envelope structs.HeroesCache
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		// An undecodable blob is treated as absent, not as a failure.
		return nil, nil
	}
	return &envelope, nil
}

func (s *HeroStore) SetHeroesCache(ctx context.Context, envelope *structs.HeroesCache) error {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to serialize heroes cache: %w", err)
	}
	if err := s.cache.Set(ctx, heroesCacheKey, string(raw), cache.NoExpiration); err != nil {
		return fmt.Errorf("failed to write heroes cache: %w", err)
	}
	return nil
}

func (s *HeroStore) DeleteHeroesCache(ctx context.Context) error {
	return s.cache.Delete(ctx, heroesCacheKey)
}
