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

// Package teams owns the user-created team collection: create, rename,
// delete, and membership edits. The service is the sole writer of the teams
// key; consumers observe the canonical collection through the hub.
package teams

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/startrack-app/startrack/pkg/common/structs"
	"github.com/startrack-app/startrack/pkg/eventhub"
	"github.com/startrack-app/startrack/pkg/logger"
	"github.com/startrack-app/startrack/pkg/store"
)

// Service serializes every read-modify-write under its mutex so overlapping
// mutations all land on the freshest collection.
type Service struct {
	mu        sync.Mutex
	teams     []structs.Team
	teamStore store.TeamStoreInterface
	hub       *eventhub.Hub[[]structs.Team]
	now       func() time.Time
}

// NewService loads the persisted collection and returns a ready service.
func NewService(ctx context.Context,
	teamStore store.TeamStoreInterface,
	hub *eventhub.Hub[[]structs.Team]) *Service {

	teams, err := teamStore.GetTeams(ctx)
	if err != nil {
		logger.Logger(ctx).WithError(err).Warn("failed to load teams, starting empty")
	}
	if teams == nil {
		teams = []structs.Team{}
	}

	return &Service{
		teams:     teams,
		teamStore: teamStore,
		hub:       hub,
		now:       time.Now,
	}
}

// Create adds a new team and returns it. A blank name (after trimming)
// gets the default "Team N" where N is the current count plus one. The new
// team is prepended: the collection stays most-recent-first.
func (s *Service) Create(ctx context.Context, name string) structs.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	finalName := strings.TrimSpace(name)
	if finalName == "" {
		finalName = fmt.Sprintf("Team %d", len(s.teams)+1)
	}

	now := s.now().UnixMilli()
	team := structs.Team{
		ID:        s.uniqueID(now),
		Name:      finalName,
		MemberIDs: []int{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append([]structs.Team{team}, s.teams...)
	s.commit(ctx, next)
	return team
}

// Rename changes a team's name. An unknown id is a silent no-op.
func (s *Service) Rename(ctx context.Context, id, name string) {
	s.updateTeam(ctx, id, func(t *structs.Team) bool {
		t.Name = name
		return true
	})
}

// Delete removes a team. An unknown id is a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.teams, func(t structs.Team) bool { return t.ID == id })
	if idx == -1 {
		return
	}

	next := slices.Clone(s.teams)
	next = append(next[:idx], next[idx+1:]...)
	s.commit(ctx, next)
}

// AddMember appends a hero to a team. Adding a hero that is already a
// member, or targeting an unknown team, is a silent no-op.
func (s *Service) AddMember(ctx context.Context, teamID string, heroID int) {
	s.updateTeam(ctx, teamID, func(t *structs.Team) bool {
		if t.HasMember(heroID) {
			return false
		}
		t.MemberIDs = append(slices.Clone(t.MemberIDs), heroID)
		return true
	})
}

// RemoveMember drops a hero from a team. Removing an absent member leaves
// the team untouched, including its UpdatedAt timestamp.
func (s *Service) RemoveMember(ctx context.Context, teamID string, heroID int) {
	s.updateTeam(ctx, teamID, func(t *structs.Team) bool {
		if !t.HasMember(heroID) {
			return false
		}
		ids := make([]int, 0, len(t.MemberIDs))
		for _, id := range t.MemberIDs {
			if id != heroID {
				ids = append(ids, id)
			}
		}
		t.MemberIDs = ids
		return true
	})
}

// List returns a snapshot of the current collection, most recent first.
func (s *Service) List() []structs.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.teams)
}

// Get returns the team with the given id.
func (s *Service) Get(id string) (structs.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.teams {
		if t.ID == id {
			t.MemberIDs = slices.Clone(t.MemberIDs)
			return t, true
		}
	}
	return structs.Team{}, false
}

// updateTeam locates a team by id and applies mutate to a copy. When mutate
// reports a change, UpdatedAt is bumped and the collection is committed; the
// team keeps its position, only creation reorders the collection.
func (s *Service) updateTeam(ctx context.Context, id string, mutate func(*structs.Team) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.teams, func(t structs.Team) bool { return t.ID == id })
	if idx == -1 {
		return
	}

	team := s.teams[idx]
	team.MemberIDs = slices.Clone(team.MemberIDs)
	if !mutate(&team) {
		return
	}
	team.UpdatedAt = s.now().UnixMilli()

	next := slices.Clone(s.teams)
	next[idx] = team
	s.commit(ctx, next)
}

// commit installs the new collection, persists it best-effort, and fans the
// snapshot out. Callers hold the mutex.
func (s *Service) commit(ctx context.Context, next []structs.Team) {
	s.teams = next
	if err := s.teamStore.SetTeams(ctx, next); err != nil {
		// Best-effort: the next mutation rewrites the full collection.
		logger.Logger(ctx).WithError(err).Warn("failed to persist teams")
	}
	s.hub.Publish(ctx, snapshot(next))
}

// uniqueID derives a team id from the creation timestamp, bumping the
// millisecond value until it does not collide with an existing team.
func (s *Service) uniqueID(epochMillis int64) string {
	for {
		id := strconv.FormatInt(epochMillis, 10)
		taken := slices.ContainsFunc(s.teams, func(t structs.Team) bool { return t.ID == id })
		if !taken {
			return id
		}
		epochMillis++
	}
}

func snapshot(teams []structs.Team) []structs.Team {
	out := make([]structs.Team, len(teams))
	for i, t := range teams {
		t.MemberIDs = slices.Clone(t.MemberIDs)
		out[i] = t
	}
	return out
}
