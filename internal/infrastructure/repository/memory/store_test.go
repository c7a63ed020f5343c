package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/user"
)

func TestUserRepository_RejectsDuplicateUsernameOrEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	id, err := repo.Create(ctx, user.User{Username: "alice", Password: "pw", Email: "a@x.io", Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}

	if _, err := repo.Create(ctx, user.User{Username: "alice", Password: "pw", Email: "b@x.io"}); !errors.Is(err, user.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for username, got %v", err)
	}
	if _, err := repo.Create(ctx, user.User{Username: "bob", Password: "pw", Email: "a@x.io"}); !errors.Is(err, user.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for email, got %v", err)
	}

	got, ok, err := repo.GetByUsername(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("get by username: ok=%v err=%v", ok, err)
	}
	if got.Role != user.RoleAdmin {
		t.Fatalf("expected admin role, got %q", got.Role)
	}
}

func TestTeamRepository_RequiresExistingMatch(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	teams := NewTeamRepository(store)

	_, err := teams.CreateWithPlayers(ctx, team.Team{MatchID: 9, Name: "Ghosts"}, nil)
	if !errors.Is(err, team.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
	if _, err := NewPlayerRepository(store).Create(ctx, player.Player{TeamID: 1, Name: "x", Role: "y"}); !errors.Is(err, player.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamRepository_CreateWithPlayersAssignsTeam(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	matches := NewMatchRepository(store)
	teams := NewTeamRepository(store)
	players := NewPlayerRepository(store)

	matchID, err := matches.Create(ctx, match.Match{Team1: "A", Team2: "B", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Venue: "Lord's"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	stored, _, _ := matches.GetByID(ctx, matchID)
	if stored.Status != match.StatusUpcoming {
		t.Fatalf("expected default status upcoming, got %q", stored.Status)
	}

	firstID, err := teams.CreateWithPlayers(ctx, team.Team{MatchID: matchID, Name: "Lions"}, []player.Player{
		{TeamID: 99, Name: "Kohli", Role: "Batsman"},
		{Name: "Bumrah", Role: "Bowler"},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	secondID, err := teams.CreateWithPlayers(ctx, team.Team{MatchID: matchID, Name: "Tigers"}, nil)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	listed, err := teams.ListByMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != firstID || listed[1].ID != secondID {
		t.Fatalf("unexpected team order: %+v", listed)
	}

	squad, err := players.ListByTeam(ctx, firstID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(squad) != 2 || squad[0].Name != "Kohli" || squad[0].TeamID != firstID {
		t.Fatalf("unexpected squad: %+v", squad)
	}
	if squad[0].Stats.Runs != nil {
		t.Fatalf("expected nil stats for roster players")
	}
}

func TestPlayerRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	matchID, _ := NewMatchRepository(store).Create(ctx, match.Match{Team1: "A", Team2: "B", Date: time.Now(), Venue: "V"})
	teamID, _ := NewTeamRepository(store).CreateWithPlayers(ctx, team.Team{MatchID: matchID, Name: "T"}, nil)
	repo := NewPlayerRepository(store)

	runs := 450
	id, err := repo.Create(ctx, player.Player{TeamID: teamID, Name: "Root", Role: "Batsman", Stats: player.Statistics{Runs: &runs}})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	runs = 1

	got, ok, err := repo.GetByID(ctx, id)
	if err != nil || !ok {
		t.Fatalf("get player: ok=%v err=%v", ok, err)
	}
	if *got.Stats.Runs != 450 {
		t.Fatalf("expected stored runs 450, got %d", *got.Stats.Runs)
	}
	*got.Stats.Runs = 2

	again, _, _ := repo.GetByID(ctx, id)
	if *again.Stats.Runs != 450 {
		t.Fatalf("stored runs mutated through returned value: %d", *again.Stats.Runs)
	}
	if _, ok, _ := repo.GetByID(ctx, id+1); ok {
		t.Fatalf("expected missing player")
	}
}
