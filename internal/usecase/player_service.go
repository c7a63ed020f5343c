package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"go.opentelemetry.io/otel/attribute"
)

type AddPlayerInput struct {
	TeamID int64
	Name   string
	Role   string
}

type PlayerService struct {
	playerRepo player.Repository
	stats      player.StatsGenerator
}

func NewPlayerService(playerRepo player.Repository, stats player.StatsGenerator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		stats:      stats,
	}
}

// AddPlayerToSquad creates a player on the team with generated statistics.
// The team is not looked up first; a missing team surfaces from the store.
func (s *PlayerService) AddPlayerToSquad(ctx context.Context, input AddPlayerInput) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayerToSquad", attribute.Int64("team.id", input.TeamID))
	defer span.End()

	item := player.Player{
		TeamID: input.TeamID,
		Name:   strings.TrimSpace(input.Name),
		Role:   strings.TrimSpace(input.Role),
		Stats:  s.stats.Generate(),
	}
	if item.TeamID <= 0 {
		return 0, fmt.Errorf("%w: team=%d", ErrNotFound, item.TeamID)
	}
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.playerRepo.Create(ctx, item)
	if errors.Is(err, player.ErrTeamNotFound) {
		return 0, fmt.Errorf("%w: team=%d", ErrNotFound, item.TeamID)
	}
	if err != nil {
		recordSpanError(span, err)
		return 0, fmt.Errorf("create player: %w", err)
	}

	return id, nil
}

func (s *PlayerService) GetPlayerStatistics(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerStatistics", attribute.Int64("player.id", playerID))
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		recordSpanError(span, err)
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return item, nil
}
