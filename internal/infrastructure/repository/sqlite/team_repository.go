package sqlite

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	qb "github.com/riskibarqy/cricket-league/internal/platform/querybuilder"
)

// playerInsertBatchSize keeps one roster INSERT under SQLite's historical
// limit of 999 bound variables (seven per player row).
const playerInsertBatchSize = 128

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) CreateWithPlayers(ctx context.Context, t team.Team, players []player.Player) (teamID int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, crerr.Wrap(err, "begin create team tx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := qb.InsertModel("teams", teamTableModel{
		Name:    t.Name,
		MatchID: t.MatchID,
	}, "")
	if err != nil {
		return 0, crerr.Wrap(err, "build insert team query")
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, crerr.WithStack(team.ErrMatchNotFound)
		}
		return 0, crerr.Wrap(err, "insert team")
	}
	teamID, err = res.LastInsertId()
	if err != nil {
		return 0, crerr.Wrap(err, "read team id")
	}

	for start := 0; start < len(players); start += playerInsertBatchSize {
		end := min(start+playerInsertBatchSize, len(players))
		if err = insertPlayerBatch(ctx, tx, teamID, players[start:end]); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, crerr.Wrap(err, "commit create team tx")
	}

	return teamID, nil
}

func (r *TeamRepository) ListByMatch(ctx context.Context, matchID int64) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select teams by match query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select teams by match")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:      row.ID,
			MatchID: row.MatchID,
			Name:    row.Name,
		})
	}

	return out, nil
}

func insertPlayerBatch(ctx context.Context, tx *sqlx.Tx, teamID int64, batch []player.Player) error {
	insert := qb.InsertInto("players").Columns("name", "role", "matches_played", "runs", "average", "strike_rate", "team_id")
	for _, item := range batch {
		insert.Values(
			item.Name,
			item.Role,
			nullIntFromPtr(item.Stats.MatchesPlayed),
			nullIntFromPtr(item.Stats.Runs),
			nullFloatFromPtr(item.Stats.Average),
			nullFloatFromPtr(item.Stats.StrikeRate),
			teamID,
		)
	}

	query, args, err := insert.ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build insert team players query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "insert team players")
	}
	return nil
}
