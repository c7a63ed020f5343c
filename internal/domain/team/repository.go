package team

import (
	"context"

	"github.com/riskibarqy/cricket-league/internal/domain/player"
)

// Repository describes team persistence needs from use cases.
type Repository interface {
	// CreateWithPlayers stores the team and its players atomically. Player
	// TeamID values are ignored and replaced with the new team id.
	CreateWithPlayers(ctx context.Context, t Team, players []player.Player) (int64, error)
	// ListByMatch returns the teams of a match ordered by team id.
	ListByMatch(ctx context.Context, matchID int64) ([]Team, error)
}
