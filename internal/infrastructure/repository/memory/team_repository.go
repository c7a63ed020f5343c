package memory

import (
	"context"

	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) CreateWithPlayers(_ context.Context, t team.Team, players []player.Player) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.matchExists(t.MatchID) {
		return 0, team.ErrMatchNotFound
	}

	t.ID = int64(len(r.store.teams)) + 1
	r.store.teams = append(r.store.teams, t)

	for _, item := range players {
		item = clonePlayer(item)
		item.TeamID = t.ID
		item.ID = int64(len(r.store.players)) + 1
		r.store.players = append(r.store.players, item)
	}

	return t.ID, nil
}

func (r *TeamRepository) ListByMatch(_ context.Context, matchID int64) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0, 2)
	for _, item := range r.store.teams {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}

	return out, nil
}
