package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/startrack-app/startrack/pkg/cache"
	"github.com/startrack-app/startrack/pkg/common/structs"
)

// teamsKey is the canonical teams namespace. A legacy "@startrack/teams"
// key with ISO-string timestamps existed in earlier builds; it is neither
// read nor migrated.
const teamsKey = "startrack.teams.v1"

// TeamStore persists the full team collection.
type TeamStore struct {
	cache cache.Cache
}

func newTeamStore(c cache.Cache) *TeamStore {
	return &TeamStore{cache: c}
}

func (s *TeamStore) GetTeams(ctx context.Context) ([]structs.Team, error) {
	raw, found, err := s.cache.Get(ctx, teamsKey)
	if err != nil {
		return []structs.Team{}, fmt.Errorf("failed to read teams: %w", err)
	}
	if !found {
		return []structs.Team{}, nil
	}

	var teams []structs.Team
	if err := json.Unmarshal([]byte(raw), &teams); err != nil {
		return []structs.Team{}, nil
	}
	if teams == nil {
		teams = []structs.Team{}
	}
	return teams, nil
}

func (s *TeamStore) SetTeams(ctx context.Context, teams []structs.Team) error {
	raw, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("failed to serialize teams: %w", err)
	}
	if err := s.cache.Set(ctx, teamsKey, string(raw), cache.NoExpiration); err != nil {
		return fmt.Errorf("failed to write teams: %w", err)
	}
	return nil
}
