package store

import (
	"github.com/startrack-app/startrack/pkg/cache"
)

// Store provides a high-level interface for persisting the hero catalog
// cache, favorites, and teams over a key-value cache backend
// It encapsulates key namespacing and JSON serialization
// NOTE: This store does NOT handle locking - callers are responsible for
// proper synchronization; each sub-store's key has exactly one writer
type Store struct {
	Hero     HeroStoreInterface
	Favorite FavoriteStoreInterface
	Team     TeamStoreInterface
}

// New creates a new Store instance with all sub-stores initialized
func New(cache cache.Cache) *Store {
	return &Store{
		Hero:     newHeroStore(cache),
		Favorite: newFavoriteStore(cache),
		Team:     newTeamStore(cache),
	}
}

// Compile-time interface compliance checks
var (
	_ HeroStoreInterface     = (*HeroStore)(nil)
	_ FavoriteStoreInterface = (*FavoriteStore)(nil)
	_ TeamStoreInterface     = (*TeamStore)(nil)
)
