package store

import (
	"context"

	"github.com/startrack-app/startrack/pkg/common/structs"
)

// HeroStoreInterface defines operations for the persisted hero catalog cache
// Key: "startrack.heroes.v1"
// The cache envelope is always read and replaced wholesale, never patched
type HeroStoreInterface interface {
	// GetHeroesCache returns the persisted catalog envelope
	// Returns (nil, nil) when the key is absent or the blob is undecodable;
	// an unreadable cache is indistinguishable from a missing one
	GetHeroesCache(ctx context.Context) (*structs.HeroesCache, error)

	// SetHeroesCache replaces the persisted catalog envelope
	SetHeroesCache(ctx context.Context, cache *structs.HeroesCache) error

	// DeleteHeroesCache removes the persisted catalog envelope
	DeleteHeroesCache(ctx context.Context) error
}

// FavoriteStoreInterface defines operations for the persisted favorites set
// Key: "startrack.favorites.v1"
type FavoriteStoreInterface interface {
	// GetFavorites returns the persisted favorites state
	// Returns an empty state (never nil) when the key is absent or unreadable
	GetFavorites(ctx context.Context) (*structs.FavoritesState, error)

	// SetFavorites replaces the persisted favorites state
	SetFavorites(ctx context.Context, state *structs.FavoritesState) error
}

// TeamStoreInterface defines operations for the persisted team collection
// Key: "startrack.teams.v1"
// The collection is always rewritten in full after a mutation
type TeamStoreInterface interface {
	// GetTeams returns the persisted team collection
	// Returns an empty slice when the key is absent or unreadable
	GetTeams(ctx context.Context) ([]structs.Team, error)

	// SetTeams replaces the persisted team collection
	SetTeams(ctx context.Context, teams []structs.Team) error
}
