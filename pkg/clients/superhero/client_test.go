package superhero

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
  {"id": 1, "name": "A-Bomb", "slug": "1-a-bomb",
   "powerstats": {"intelligence": 38, "strength": 100, "speed": 17, "durability": 80, "power": 24, "combat": 64},
   "biography": {"fullName": "Richard Milhouse Jones", "publisher": "Marvel Comics", "alignment": "good"},
   "images": {"xs": "https://cdn.test/xs/1.jpg", "sm": "https://cdn.test/sm/1.jpg", "md": "https://cdn.test/md/1.jpg", "lg": "https://cdn.test/lg/1.jpg"}},
  {"id": 2, "name": "Abe Sapien", "slug": "2-abe-sapien",
   "powerstats": {"intelligence": 88, "strength": 28, "speed": 35, "durability": 65, "power": 100, "combat": null},
   "biography": {"fullName": "Abraham Sapien", "publisher": "Dark Horse Comics", "alignment": "good"},
   "images": {"xs": "https://cdn.test/xs/2.jpg", "sm": "https://cdn.test/sm/2.jpg", "md": "https://cdn.test/md/2.jpg", "lg": "https://cdn.test/lg/2.jpg"}}
]`

func TestFetchAllHeroes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	client := NewClientWithDoer(srv.URL, http.DefaultClient)
	heroes, err := client.FetchAllHeroes(context.Background())
	require.NoError(t, err)
	require.Len(t, heroes, 2)

	assert.Equal(t, 1, heroes[0].ID)
	assert.Equal(t, "A-Bomb", heroes[0].Name)
	require.NotNil(t, heroes[0].Powerstats.Strength)
	assert.Equal(t, 100, *heroes[0].Powerstats.Strength)

	// Null stats stay nil
	assert.Equal(t, "Abe Sapien", heroes[1].Name)
	assert.Nil(t, heroes[1].Powerstats.Combat)
}

func TestFetchAllHeroes_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClientWithDoer(srv.URL, http.DefaultClient)
	heroes, err := client.FetchAllHeroes(context.Background())
	assert.Error(t, err)
	assert.Nil(t, heroes)
}

func TestFetchAllHeroes_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	client := NewClientWithDoer(srv.URL, http.DefaultClient)
	_, err := client.FetchAllHeroes(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestFetchAllHeroes_NetworkError(t *testing.T) {
	// A closed server causes a transport failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClientWithDoer(srv.URL, http.DefaultClient)
	_, err := client.FetchAllHeroes(context.Background())
	assert.Error(t, err)
}
