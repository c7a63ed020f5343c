package memory

import (
	"sync"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/user"
)

// Store holds every table of the in-memory driver behind one lock so
// reference checks and inserts see a consistent view. Rows are never
// removed, so a row's id is its 1-based position.
type Store struct {
	mu      sync.RWMutex
	users   []user.User
	matches []match.Match
	teams   []team.Team
	players []player.Player
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) matchExists(id int64) bool {
	return id > 0 && id <= int64(len(s.matches))
}

func (s *Store) teamExists(id int64) bool {
	return id > 0 && id <= int64(len(s.teams))
}

func clonePlayer(p player.Player) player.Player {
	copied := p
	copied.Stats = player.Statistics{
		MatchesPlayed: cloneValue(p.Stats.MatchesPlayed),
		Runs:          cloneValue(p.Stats.Runs),
		Average:       cloneValue(p.Stats.Average),
		StrikeRate:    cloneValue(p.Stats.StrikeRate),
	}
	return copied
}

func cloneValue[T any](v *T) *T {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
