package sqlite

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-league/internal/domain/player"
	qb "github.com/riskibarqy/cricket-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	query, args, err := qb.InsertModel("players", playerTableModel{
		Name:          p.Name,
		Role:          p.Role,
		MatchesPlayed: nullIntFromPtr(p.Stats.MatchesPlayed),
		Runs:          nullIntFromPtr(p.Stats.Runs),
		Average:       nullFloatFromPtr(p.Stats.Average),
		StrikeRate:    nullFloatFromPtr(p.Stats.StrikeRate),
		TeamID:        p.TeamID,
	}, "")
	if err != nil {
		return 0, crerr.Wrap(err, "build insert player query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, crerr.WithStack(player.ErrTeamNotFound)
		}
		return 0, crerr.Wrap(err, "insert player")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, crerr.Wrap(err, "read player id")
	}
	return id, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build get player by id query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, "get player by id")
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players by team query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players by team")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:     row.ID,
		TeamID: row.TeamID,
		Name:   row.Name,
		Role:   row.Role,
		Stats: player.Statistics{
			MatchesPlayed: nullIntToPtr(row.MatchesPlayed),
			Runs:          nullIntToPtr(row.Runs),
			Average:       nullFloatToPtr(row.Average),
			StrikeRate:    nullFloatToPtr(row.StrikeRate),
		},
	}
}
