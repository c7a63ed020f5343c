package cache

import (
	"context"
	"slices"
	"strconv"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	basecache "github.com/riskibarqy/cricket-league/internal/platform/cache"
)

const (
	matchListKey     = "match:list"
	matchByIDPrefix  = "match:id:"
	teamListPrefix   = "team:list:"
	playerListPrefix = "player:list:"
)

func idKey(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

// MatchRepository caches the match list and lookups by id, including misses.
type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (int64, error) {
	id, err := r.next.Create(ctx, m)
	if err != nil {
		return 0, err
	}

	// A cached miss for the new id would otherwise hide it.
	r.cache.Invalidate(ctx, matchListKey)
	r.cache.InvalidatePrefix(ctx, matchByIDPrefix)
	return id, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	items, err := basecache.Load(ctx, r.cache, matchListKey, r.next.List)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

type matchLookup struct {
	value  match.Match
	exists bool
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	found, err := basecache.Load(ctx, r.cache, idKey(matchByIDPrefix, matchID), func(ctx context.Context) (matchLookup, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		return matchLookup{value: item, exists: exists}, err
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return found.value, found.exists, nil
}

// TeamRepository caches the teams of each match.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) CreateWithPlayers(ctx context.Context, t team.Team, players []player.Player) (int64, error) {
	id, err := r.next.CreateWithPlayers(ctx, t, players)
	if err != nil {
		return 0, err
	}

	r.cache.Invalidate(ctx, idKey(teamListPrefix, t.MatchID), idKey(playerListPrefix, id))
	return id, nil
}

func (r *TeamRepository) ListByMatch(ctx context.Context, matchID int64) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, idKey(teamListPrefix, matchID), func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByMatch(ctx, matchID)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

// PlayerRepository caches squad listings per team.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	id, err := r.next.Create(ctx, p)
	if err != nil {
		return 0, err
	}

	r.cache.Invalidate(ctx, idKey(playerListPrefix, p.TeamID))
	return id, nil
}

// GetByID is not cached; statistics reads go straight to the store.
func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return r.next.GetByID(ctx, playerID)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, idKey(playerListPrefix, teamID), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}
