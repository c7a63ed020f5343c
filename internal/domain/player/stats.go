package player

// StatsGenerator produces statistics for newly added squad players.
type StatsGenerator interface {
	Generate() Statistics
}

const (
	MinMatchesPlayed = 10
	MaxMatchesPlayed = 100
	MinRuns          = 100
	MaxRuns          = 1000
	MaxAverage       = 100.0
	MaxStrikeRate    = 100.0
)
