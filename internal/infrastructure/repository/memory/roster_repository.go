package memory

import (
	"context"
	"sync"

	"github.com/fairwaylabs/golfpool/internal/domain/roster"
)

type RosterRepository struct {
	mu      sync.RWMutex
	items   map[string]roster.Team
	byEntry map[string]string
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{
		items:   make(map[string]roster.Team),
		byEntry: make(map[string]string),
	}
}

func (r *RosterRepository) Create(_ context.Context, team roster.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEntry[team.EntryID]; exists {
		return roster.ErrTeamExists
	}

	r.items[team.ID] = cloneTeam(team)
	r.byEntry[team.EntryID] = team.ID
	return nil
}

func (r *RosterRepository) GetByID(_ context.Context, teamID string) (roster.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.items[teamID]
	if !ok {
		return roster.Team{}, false, nil
	}

	return cloneTeam(team), true, nil
}

func (r *RosterRepository) GetByEntry(_ context.Context, entryID string) (roster.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEntry[entryID]
	if !ok {
		return roster.Team{}, false, nil
	}

	return cloneTeam(r.items[id]), true, nil
}

func (r *RosterRepository) ReplacePicks(_ context.Context, team roster.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[team.ID]; !ok {
		return nil
	}

	r.items[team.ID] = cloneTeam(team)
	return nil
}

func (r *RosterRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.items[teamID]
	if !ok {
		return nil
	}

	delete(r.byEntry, team.EntryID)
	delete(r.items, teamID)
	return nil
}

func cloneTeam(t roster.Team) roster.Team {
	copied := t
	copied.Picks = append([]roster.Pick(nil), t.Picks...)
	return copied
}
