package usecase

import (
	"errors"
	"testing"
)

func TestTeamService_CreateTeamForMatch_SkipsMalformedPlayers(t *testing.T) {
	f := newMatchFixture()

	matchID, err := f.matches.CreateMatch(t.Context(), CreateMatchInput{Team1: "India", Team2: "Australia", Date: "2024-03-15", Venue: "Mumbai"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	result, err := f.teams.CreateTeamForMatch(t.Context(), CreateTeamInput{
		MatchID:  matchID,
		TeamName: "India XI",
		Players: []RosterEntry{
			{Name: "Kohli", Role: "Batsman"},
			{Name: "NoRole"},
			{Role: "Bowler"},
			{Name: "Jadeja", Role: "All-rounder"},
		},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if result.PlayersCreated != 2 || result.PlayersSkipped != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}

	stats, err := f.players.GetPlayerStatistics(t.Context(), 1)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if stats.Name != "Kohli" || stats.TeamID != result.TeamID {
		t.Fatalf("unexpected player: %+v", stats)
	}
	if stats.Stats.MatchesPlayed != nil || stats.Stats.Average != nil {
		t.Fatalf("expected roster player to have no statistics, got %+v", stats.Stats)
	}
}

func TestTeamService_CreateTeamForMatch_MissingMatchCheckedFirst(t *testing.T) {
	f := newMatchFixture()

	_, err := f.teams.CreateTeamForMatch(t.Context(), CreateTeamInput{MatchID: 7})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_CreateTeamForMatch_RequiresName(t *testing.T) {
	f := newMatchFixture()

	matchID, err := f.matches.CreateMatch(t.Context(), CreateMatchInput{Team1: "India", Team2: "Australia", Date: "2024-03-15", Venue: "Mumbai"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	_, err = f.teams.CreateTeamForMatch(t.Context(), CreateTeamInput{MatchID: matchID, TeamName: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
