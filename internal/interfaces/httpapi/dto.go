package httpapi

import (
	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createMatchRequest struct {
	Team1 string `json:"team_1" validate:"required"`
	Team2 string `json:"team_2" validate:"required"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Venue string `json:"venue" validate:"required"`
}

type addPlayerRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// createTeamRequest carries no validation tags: a missing match must win
// over a missing team name, and malformed roster entries are skipped.
type createTeamRequest struct {
	TeamName string               `json:"team_name"`
	Players  []rosterEntryRequest `json:"players"`
}

type rosterEntryRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type accountResponse struct {
	Status      string `json:"status"`
	StatusCode  int    `json:"status_code"`
	UserID      int64  `json:"user_id"`
	AccessToken string `json:"access_token,omitempty"`
}

type createMatchResponse struct {
	Message string `json:"message"`
	MatchID int64  `json:"match_id"`
}

type matchSummaryDTO struct {
	MatchID int64  `json:"match_id"`
	Team1   string `json:"team_1"`
	Team2   string `json:"team_2"`
	Date    string `json:"date"`
	Venue   string `json:"venue"`
}

type listMatchesResponse struct {
	Matches []matchSummaryDTO `json:"matches"`
}

type squadPlayerDTO struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
}

type squadsDTO struct {
	Team1 []squadPlayerDTO `json:"team_1"`
	Team2 []squadPlayerDTO `json:"team_2"`
}

type matchDetailsDTO struct {
	MatchID int64     `json:"match_id"`
	Team1   string    `json:"team_1"`
	Team2   string    `json:"team_2"`
	Date    string    `json:"date"`
	Venue   string    `json:"venue"`
	Status  string    `json:"status"`
	Squads  squadsDTO `json:"squads"`
}

type addPlayerResponse struct {
	Message  string `json:"message"`
	PlayerID int64  `json:"player_id"`
}

type playerStatsDTO struct {
	PlayerID      int64    `json:"player_id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	MatchesPlayed *int     `json:"matches_played"`
	Runs          *int     `json:"runs"`
	Average       *float64 `json:"average"`
	StrikeRate    *float64 `json:"strike_rate"`
}

type createTeamResponse struct {
	Message string `json:"message"`
	TeamID  int64  `json:"team_id"`
}

func matchToSummaryDTO(m match.Match) matchSummaryDTO {
	return matchSummaryDTO{
		MatchID: m.ID,
		Team1:   m.Team1,
		Team2:   m.Team2,
		Date:    m.FormattedDate(),
		Venue:   m.Venue,
	}
}

func matchDetailsToDTO(details usecase.MatchDetails) matchDetailsDTO {
	return matchDetailsDTO{
		MatchID: details.Match.ID,
		Team1:   details.Match.Team1,
		Team2:   details.Match.Team2,
		Date:    details.Match.FormattedDate(),
		Venue:   details.Match.Venue,
		Status:  details.Match.Status,
		Squads: squadsDTO{
			Team1: squadToDTO(details.Squads[0]),
			Team2: squadToDTO(details.Squads[1]),
		},
	}
}

func squadToDTO(squad usecase.TeamSquad) []squadPlayerDTO {
	out := make([]squadPlayerDTO, 0, len(squad.Players))
	for _, item := range squad.Players {
		out = append(out, squadPlayerDTO{PlayerID: item.ID, Name: item.Name})
	}
	return out
}

func playerToStatsDTO(p player.Player) playerStatsDTO {
	return playerStatsDTO{
		PlayerID:      p.ID,
		Name:          p.Name,
		Role:          p.Role,
		MatchesPlayed: p.Stats.MatchesPlayed,
		Runs:          p.Stats.Runs,
		Average:       p.Stats.Average,
		StrikeRate:    p.Stats.StrikeRate,
	}
}
