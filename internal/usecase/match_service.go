package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// squadSlots names the two sides of a match details response, in team id order.
var squadSlots = [2]string{"team_1", "team_2"}

type CreateMatchInput struct {
	Team1 string
	Team2 string
	Date  string
	Venue string
}

type TeamSquad struct {
	Team    team.Team
	Players []player.Player
}

type MatchDetails struct {
	Match  match.Match
	Squads [2]TeamSquad
}

type MatchService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, playerRepo player.Repository) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	date, err := match.ParseDate(input.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item := match.Match{
		Team1:  strings.TrimSpace(input.Team1),
		Team2:  strings.TrimSpace(input.Team2),
		Date:   date,
		Venue:  strings.TrimSpace(input.Venue),
		Status: match.StatusUpcoming,
	}
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		recordSpanError(span, err)
		return 0, fmt.Errorf("create match: %w", err)
	}

	return id, nil
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

// GetMatchDetails returns the match with the squads of its first two teams.
// A match with fewer than two registered teams is reported as not found.
func (s *MatchService) GetMatchDetails(ctx context.Context, matchID int64) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatchDetails", attribute.Int64("match.id", matchID))
	defer span.End()

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return MatchDetails{}, err
	}

	teams, err := s.teamRepo.ListByMatch(ctx, matchID)
	if err != nil {
		recordSpanError(span, err)
		return MatchDetails{}, fmt.Errorf("list teams by match: %w", err)
	}
	if len(teams) < len(squadSlots) {
		return MatchDetails{}, fmt.Errorf("%w: squad %s for match=%d", ErrNotFound, squadSlots[len(teams)], matchID)
	}

	details := MatchDetails{Match: item}
	p := pool.New().WithErrors().WithContext(ctx)
	for i := range squadSlots {
		teamItem := teams[i]
		p.Go(func(ctx context.Context) error {
			players, err := s.playerRepo.ListByTeam(ctx, teamItem.ID)
			if err != nil {
				return fmt.Errorf("list players for team=%d: %w", teamItem.ID, err)
			}
			details.Squads[i] = TeamSquad{Team: teamItem, Players: players}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		recordSpanError(span, err)
		return MatchDetails{}, err
	}

	return details, nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID int64) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return item, nil
}
