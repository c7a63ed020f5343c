package memory

import (
	"context"

	"github.com/riskibarqy/cricket-league/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.teamExists(p.TeamID) {
		return 0, player.ErrTeamNotFound
	}

	p = clonePlayer(p)
	p.ID = int64(len(r.store.players)) + 1
	r.store.players = append(r.store.players, p)
	return p.ID, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if playerID <= 0 || playerID > int64(len(r.store.players)) {
		return player.Player{}, false, nil
	}

	return clonePlayer(r.store.players[playerID-1]), true, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.store.players {
		if item.TeamID == teamID {
			out = append(out, clonePlayer(item))
		}
	}

	return out, nil
}
