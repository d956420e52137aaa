/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package favorites owns the set of favorited hero ids. State is loaded
// once at construction; every mutation rewrites the full persisted state
// and fans the new snapshot out through the hub.
package favorites

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/startrack-app/startrack/pkg/common/structs"
	"github.com/startrack-app/startrack/pkg/eventhub"
	"github.com/startrack-app/startrack/pkg/logger"
	"github.com/startrack-app/startrack/pkg/store"
)

// Service is the sole writer of the favorites key. Mutations are applied
// against the latest in-memory state under the mutex, so overlapping calls
// never lose an update.
type Service struct {
	mu            sync.Mutex
	state         *structs.FavoritesState
	favoriteStore store.FavoriteStoreInterface
	hub           *eventhub.Hub[structs.FavoritesState]
	now           func() time.Time
}

// NewService loads the persisted state and returns a ready service. A
// failed load starts from an empty state; favorites are never a hard error.
func NewService(ctx context.Context,
	favoriteStore store.FavoriteStoreInterface,
	hub *eventhub.Hub[structs.FavoritesState]) *Service {

	state, err := favoriteStore.GetFavorites(ctx)
	if err != nil {
		logger.Logger(ctx).WithError(err).Warn("failed to load favorites, starting empty")
	}
	if state == nil {
		state = &structs.FavoritesState{IDs: []int{}}
	}

	return &Service{
		state:         state,
		favoriteStore: favoriteStore,
		hub:           hub,
		now:           time.Now,
	}
}

// Add favorites a hero. Adding an already-favorited hero is a no-op.
func (s *Service) Add(ctx context.Context, hero *structs.Superhero) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.state.IDs, hero.ID) {
		return
	}

	next := &structs.FavoritesState{
		IDs:       append(slices.Clone(s.state.IDs), hero.ID),
		UpdatedAt: s.now().UnixMilli(),
	}
	s.commit(ctx, next)
}

// Remove unfavorites a hero. Removing an absent id is a no-op.
func (s *Service) Remove(ctx context.Context, heroID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.state.IDs, heroID) {
		return
	}

	ids := make([]int, 0, len(s.state.IDs))
	for _, id := range s.state.IDs {
		if id != heroID {
			ids = append(ids, id)
		}
	}
	next := &structs.FavoritesState{IDs: ids, UpdatedAt: s.now().UnixMilli()}
	s.commit(ctx, next)
}

// IsFavorite reports whether heroID is currently favorited.
func (s *Service) IsFavorite(heroID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Contains(heroID)
}

// State returns a snapshot of the current favorites state.
func (s *Service) State() structs.FavoritesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return structs.FavoritesState{
		IDs:       slices.Clone(s.state.IDs),
		UpdatedAt: s.state.UpdatedAt,
	}
}

// commit installs the new state, persists it best-effort, and publishes the
// snapshot. Callers hold the mutex.
func (s *Service) commit(ctx context.Context, next *structs.FavoritesState) {
	s.state = next
	if err := s.favoriteStore.SetFavorites(ctx, next); err != nil {
		// Best-effort: the next mutation rewrites the full state anyway.
		logger.Logger(ctx).WithError(err).Warn("failed to persist favorites")
	}
	s.hub.Publish(ctx, structs.FavoritesState{
		IDs:       slices.Clone(next.IDs),
		UpdatedAt: next.UpdatedAt,
	})
}
