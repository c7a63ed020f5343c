package sqlite

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
	qb "github.com/riskibarqy/cricket-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (int64, error) {
	status := m.Status
	if status == "" {
		status = match.StatusUpcoming
	}

	query, args, err := qb.InsertModel("matches", matchTableModel{
		Team1:  m.Team1,
		Team2:  m.Team2,
		Date:   m.FormattedDate(),
		Venue:  m.Venue,
		Status: status,
	}, "")
	if err != nil {
		return 0, crerr.Wrap(err, "build insert match query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, crerr.Wrap(err, "insert match")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, crerr.Wrap(err, "read match id")
	}
	return id, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match by id query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrap(err, "get match by id")
	}

	item, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	date, err := match.ParseDate(row.Date)
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "decode match id=%d", row.ID)
	}

	return match.Match{
		ID:     row.ID,
		Team1:  row.Team1,
		Team2:  row.Team2,
		Date:   date,
		Venue:  row.Venue,
		Status: row.Status,
	}, nil
}
