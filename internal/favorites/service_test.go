package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/startrack-app/startrack/pkg/cache/inmemory"
	"github.com/startrack-app/startrack/pkg/common/structs"
	"github.com/startrack-app/startrack/pkg/eventhub"
	"github.com/startrack-app/startrack/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Store, *eventhub.Hub[structs.FavoritesState]) {
	t.Helper()
	c, err := inmemory.NewCache(&inmemory.Config{DefaultExpiration: -1, CleanupInterval: -1})
	require.NoError(t, err)
	db := store.New(c)
	hub := eventhub.New[structs.FavoritesState]()
	return NewService(context.Background(), db.Favorite, hub), db, hub
}

func TestAdd_Idempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	hero := &structs.Superhero{ID: 1, Name: "A-Bomb"}

	svc.Add(ctx, hero)
	once := svc.State()

	svc.Add(ctx, hero)
	twice := svc.State()

	assert.Equal(t, once.IDs, twice.IDs)
	assert.Equal(t, []int{1}, twice.IDs)
}

func TestRemove_Scenario(t *testing.T) {
	// Start from {ids: [1,2], updatedAt: t0}; remove(2) must persist
	// {ids: [1], updatedAt: t1 > t0} and flip isFavorite(2).
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	t0 := time.UnixMilli(1000)
	t1 := time.UnixMilli(2000)

	svc.now = func() time.Time { return t0 }
	svc.Add(ctx, &structs.Superhero{ID: 1})
	svc.Add(ctx, &structs.Superhero{ID: 2})
	require.Equal(t, []int{1, 2}, svc.State().IDs)

	svc.now = func() time.Time { return t1 }
	svc.Remove(ctx, 2)

	state := svc.State()
	assert.Equal(t, []int{1}, state.IDs)
	assert.Greater(t, state.UpdatedAt, t0.UnixMilli())
	assert.False(t, svc.IsFavorite(2))
	assert.True(t, svc.IsFavorite(1))

	persisted, err := db.Favorite.GetFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, persisted.IDs)
	assert.Equal(t, t1.UnixMilli(), persisted.UpdatedAt)
}

func TestRemove_AbsentIdIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.Add(ctx, &structs.Superhero{ID: 1})
	before := svc.State()

	svc.Remove(ctx, 99)
	after := svc.State()

	assert.Equal(t, before, after)
}

func TestNewService_LoadsPersistedState(t *testing.T) {
	c, err := inmemory.NewCache(&inmemory.Config{DefaultExpiration: -1, CleanupInterval: -1})
	require.NoError(t, err)
	db := store.New(c)
	ctx := context.Background()

	require.NoError(t, db.Favorite.SetFavorites(ctx, &structs.FavoritesState{
		IDs:       []int{3, 5},
		UpdatedAt: 1700000000000,
	}))

	svc := NewService(ctx, db.Favorite, eventhub.New[structs.FavoritesState]())
	assert.True(t, svc.IsFavorite(3))
	assert.True(t, svc.IsFavorite(5))
	assert.False(t, svc.IsFavorite(4))
}

func TestMutations_PublishSnapshots(t *testing.T) {
	svc, _, hub := newTestService(t)
	ctx := context.Background()

	var received []structs.FavoritesState
	hub.Subscribe(func(s structs.FavoritesState) { received = append(received, s) })

	svc.Add(ctx, &structs.Superhero{ID: 1})
	svc.Add(ctx, &structs.Superhero{ID: 1}) // no-op, no publish
	svc.Remove(ctx, 1)

	require.Len(t, received, 2)
	assert.Equal(t, []int{1}, received[0].IDs)
	assert.Empty(t, received[1].IDs)
}

func TestConcurrentAdds_NoLostUpdates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	done := make(chan struct{})
	for i := 1; i <= 20; i++ {
		go func(id int) {
			svc.Add(ctx, &structs.Superhero{ID: id})
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	assert.Len(t, svc.State().IDs, 20)
}
