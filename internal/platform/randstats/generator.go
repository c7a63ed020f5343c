package randstats

import (
	"math/rand/v2"
	"sync"

	"github.com/riskibarqy/cricket-league/internal/domain/player"
)

// Generator fills player statistics with uniformly random placeholder values.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Generator {
	return &Generator{}
}

// NewSeeded returns a reproducible generator.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (g *Generator) Generate() player.Statistics {
	if g.rng != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
	}

	matches := player.MinMatchesPlayed + g.intN(player.MaxMatchesPlayed-player.MinMatchesPlayed+1)
	runs := player.MinRuns + g.intN(player.MaxRuns-player.MinRuns+1)
	average := g.float64() * player.MaxAverage
	strikeRate := g.float64() * player.MaxStrikeRate

	return player.Statistics{
		MatchesPlayed: &matches,
		Runs:          &runs,
		Average:       &average,
		StrikeRate:    &strikeRate,
	}
}

func (g *Generator) intN(n int) int {
	if g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}

func (g *Generator) float64() float64 {
	if g.rng == nil {
		return rand.Float64()
	}
	return g.rng.Float64()
}
