package memory

import (
	"context"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if m.Status == "" {
		m.Status = match.StatusUpcoming
	}

	m.ID = int64(len(r.store.matches)) + 1
	r.store.matches = append(r.store.matches, m)
	return m.ID, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]match.Match(nil), r.store.matches...), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if !r.store.matchExists(matchID) {
		return match.Match{}, false, nil
	}

	return r.store.matches[matchID-1], true, nil
}
