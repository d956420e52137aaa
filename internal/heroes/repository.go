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

// Package heroes implements the cache-first catalog repository: prefer the
// persisted catalog, go to the network on miss or explicit refresh, and fall
// back to any stale catalog when the network fails. A stale list beats an
// empty screen; an explicit refresh still overrides staleness.
package heroes

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/startrack-app/startrack/pkg/common/structs"
	"github.com/startrack-app/startrack/pkg/logger"
	"github.com/startrack-app/startrack/pkg/store"
)

// CatalogClient fetches the full hero catalog from the remote source.
type CatalogClient interface {
	FetchAllHeroes(ctx context.Context) ([]structs.Superhero, error)
}

// FetchResult is the outcome of a catalog read.
type FetchResult struct {
	Heroes    []structs.Superhero
	FromCache bool
}

// Repository owns the persisted hero catalog.
type Repository struct {
	heroStore store.HeroStoreInterface
	client    CatalogClient
	group     singleflight.Group
	now       func() time.Time
}

// NewRepository builds a Repository over the given store and client.
func NewRepository(heroStore store.HeroStoreInterface, client CatalogClient) *Repository {
	return &Repository{
		heroStore: heroStore,
		client:    client,
		now:       time.Now,
	}
}

// Fetch returns the hero catalog.
//
// With forceRefresh false, a persisted cache with the current schema version
// and at least one hero is returned without any network call. Otherwise the
// catalog is fetched, persisted best-effort, and returned fresh; if the
// fetch fails, any persisted cache with a non-empty hero list — regardless
// of schema version — is returned instead, and the fetch error propagates
// only when no such fallback exists.
//
// Concurrent calls with the same forceRefresh flag collapse into one
// execution and share its result.
func (r *Repository) Fetch(ctx context.Context, forceRefresh bool) (*FetchResult, error) {
	key := fmt.Sprintf("fetch:%t", forceRefresh)
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		return r.fetch(ctx, forceRefresh)
	})
	if err != nil {
		return nil, err
	}
	return v.(*FetchResult), nil
}

func (r *Repository) fetch(ctx context.Context, forceRefresh bool) (*FetchResult, error) {
	log := logger.Logger(ctx).WithField("component", "heroes")

	var cached *structs.HeroesCache
	if !forceRefresh {
		var err error
		cached, err = r.heroStore.GetHeroesCache(ctx)
		if err != nil {
			log.WithError(err).Warn("error reading heroes cache, falling through to network")
		}
		if cached.Usable() {
			return &FetchResult{Heroes: cached.Heroes, FromCache: true}, nil
		}
	}

	heroes, fetchErr := r.client.FetchAllHeroes(ctx)
	if fetchErr == nil {
		envelope := &structs.HeroesCache{
			Version:     structs.CacheSchemaVersion,
			LastUpdated: r.now().UnixMilli(),
			Heroes:      heroes,
		}
		// Persistence is best-effort; a failed write never fails the fetch.
		if err := r.heroStore.SetHeroesCache(ctx, envelope); err != nil {
			log.WithError(err).Warn("failed to persist heroes cache")
		}
		return &FetchResult{Heroes: heroes, FromCache: false}, nil
	}

	log.WithError(fetchErr).Error("catalog fetch failed, attempting stale cache")

	// Stale recovery accepts any schema version as long as it has heroes.
	// The forced path skipped the initial read, so read here; otherwise the
	// earlier read is reused.
	if forceRefresh {
		var err error
		cached, err = r.heroStore.GetHeroesCache(ctx)
		if err != nil {
			log.WithError(err).Warn("error reading heroes cache during fallback")
		}
	}
	if cached != nil && len(cached.Heroes) > 0 {
		return &FetchResult{Heroes: cached.Heroes, FromCache: true}, nil
	}

	return nil, fetchErr
}

// Invalidate drops the persisted catalog. The next non-forced Fetch will go
// to the network.
func (r *Repository) Invalidate(ctx context.Context) error {
	return r.heroStore.DeleteHeroesCache(ctx)
}
