package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Match) (int64, error)
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
}
