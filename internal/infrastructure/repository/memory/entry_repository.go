package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fairwaylabs/golfpool/internal/domain/entry"
)

type EntryRepository struct {
	mu       sync.RWMutex
	items    map[string]entry.Entry
	byMember map[string]string
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{
		items:    make(map[string]entry.Entry),
		byMember: make(map[string]string),
	}
}

func (r *EntryRepository) Create(_ context.Context, e entry.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createLocked(e)
}

// createLocked inserts without taking the lock so the league repository can
// create the creator's entry inside its own critical section.
func (r *EntryRepository) createLocked(e entry.Entry) error {
	key := memberKey(e.UserID, e.LeagueID)
	if _, exists := r.byMember[key]; exists {
		return entry.ErrAlreadyExists
	}

	r.items[e.ID] = e
	r.byMember[key] = e.ID
	return nil
}

func (r *EntryRepository) GetByID(_ context.Context, entryID string) (entry.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[entryID]
	if !ok {
		return entry.Entry{}, false, nil
	}

	return e, true, nil
}

func (r *EntryRepository) GetByUserAndLeague(_ context.Context, userID, leagueID string) (entry.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byMember[memberKey(userID, leagueID)]
	if !ok {
		return entry.Entry{}, false, nil
	}

	return r.items[id], true, nil
}

func (r *EntryRepository) ListByLeague(_ context.Context, leagueID string) ([]entry.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entry.Entry, 0)
	for _, e := range r.items {
		if e.LeagueID == leagueID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *EntryRepository) ListByUser(_ context.Context, userID string) ([]entry.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entry.Entry, 0)
	for _, e := range r.items {
		if e.UserID == userID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *EntryRepository) CountByLeague(_ context.Context, leagueID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.items {
		if e.LeagueID == leagueID {
			count++
		}
	}

	return count, nil
}

func (r *EntryRepository) UpdatePayment(_ context.Context, entryID string, status entry.PaymentStatus, amountPaid *float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[entryID]
	if !ok {
		return nil
	}

	e.PaymentStatus = status
	if amountPaid != nil {
		e.AmountPaid = *amountPaid
	}
	e.UpdatedAt = time.Now().UTC()
	r.items[entryID] = e
	return nil
}

func (r *EntryRepository) UpdateScore(_ context.Context, entryID string, totalScore float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[entryID]
	if !ok {
		return nil
	}

	e.TotalScore = totalScore
	e.UpdatedAt = time.Now().UTC()
	r.items[entryID] = e
	return nil
}

func (r *EntryRepository) Delete(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[entryID]
	if !ok {
		return nil
	}

	delete(r.byMember, memberKey(e.UserID, e.LeagueID))
	delete(r.items, entryID)
	return nil
}

func memberKey(userID, leagueID string) string {
	return userID + "::" + leagueID
}
