package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type RosterEntry struct {
	Name string
	Role string
}

type CreateTeamInput struct {
	MatchID  int64
	TeamName string
	Players  []RosterEntry
}

type CreateTeamResult struct {
	TeamID         int64
	PlayersCreated int
	PlayersSkipped int
}

type TeamService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	logger    *logging.Logger
}

func NewTeamService(matchRepo match.Repository, teamRepo team.Repository, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		logger:    logger,
	}
}

// CreateTeamForMatch registers a team and its well-formed roster entries.
// Entries missing a name or a role are skipped.
func (s *TeamService) CreateTeamForMatch(ctx context.Context, input CreateTeamInput) (CreateTeamResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeamForMatch", attribute.Int64("match.id", input.MatchID))
	defer span.End()

	if input.MatchID <= 0 {
		return CreateTeamResult{}, fmt.Errorf("%w: match=%d", ErrNotFound, input.MatchID)
	}
	_, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		recordSpanError(span, err)
		return CreateTeamResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return CreateTeamResult{}, fmt.Errorf("%w: match=%d", ErrNotFound, input.MatchID)
	}

	teamName := strings.TrimSpace(input.TeamName)
	if teamName == "" {
		return CreateTeamResult{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	players := make([]player.Player, 0, len(input.Players))
	for _, entry := range input.Players {
		if !player.IsWellFormed(entry.Name, entry.Role) {
			continue
		}
		players = append(players, player.Player{
			Name: strings.TrimSpace(entry.Name),
			Role: strings.TrimSpace(entry.Role),
		})
	}

	teamID, err := s.teamRepo.CreateWithPlayers(ctx, team.Team{MatchID: input.MatchID, Name: teamName}, players)
	if errors.Is(err, team.ErrMatchNotFound) {
		return CreateTeamResult{}, fmt.Errorf("%w: match=%d", ErrNotFound, input.MatchID)
	}
	if err != nil {
		recordSpanError(span, err)
		return CreateTeamResult{}, fmt.Errorf("create team with players: %w", err)
	}

	result := CreateTeamResult{
		TeamID:         teamID,
		PlayersCreated: len(players),
		PlayersSkipped: len(input.Players) - len(players),
	}
	if result.PlayersSkipped > 0 {
		s.logger.WarnContext(ctx, "skipped malformed roster entries",
			"match_id", input.MatchID,
			"team_id", teamID,
			"skipped", result.PlayersSkipped,
		)
	}

	return result, nil
}
