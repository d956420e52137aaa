package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/startrack-app/startrack/pkg/cache"
	"github.com/startrack-app/startrack/pkg/common/structs"
)

const favoritesKey = "startrack.favorites.v1"

// FavoriteStore persists the favorites state. Reads degrade to an empty
// state so a corrupted blob never blocks the favorites feature.
type FavoriteStore struct {
	cache cache.Cache
}

func newFavoriteStore(c cache.Cache) *FavoriteStore {
	return &FavoriteStore{cache: c}
}

func (s *FavoriteStore) GetFavorites(ctx context.Context) (*structs.FavoritesState, error) {
	empty := &structs.FavoritesState{IDs: []int{}}

	raw, found, err := s.cache.Get(ctx, favoritesKey)
	if err != nil {
		return empty, fmt.Errorf("failed to read favorites: %w", err)
	}
	if !found {
		return empty, nil
	}

	var state structs.FavoritesState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return empty, nil
	}
	if state.IDs == nil {
		state.IDs = []int{}
	}
	return &state, nil
}

func (s *FavoriteStore) SetFavorites(ctx context.Context, state *structs.FavoritesState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %w", err)
	}
	if err := s.cache.Set(ctx, favoritesKey, string(raw), cache.NoExpiration); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}
