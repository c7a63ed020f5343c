package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) (int64, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	// ListByTeam returns the players of a team ordered by player id.
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
}
