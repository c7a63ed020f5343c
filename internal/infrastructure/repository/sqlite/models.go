package sqlite

import (
	"database/sql"
	"time"
)

type userTableModel struct {
	ID        int64     `db:"id,auto"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at,auto"`
}

type matchTableModel struct {
	ID        int64     `db:"id,auto"`
	Team1     string    `db:"team_1"`
	Team2     string    `db:"team_2"`
	Date      string    `db:"date"`
	Venue     string    `db:"venue"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at,auto"`
}

type teamTableModel struct {
	ID        int64     `db:"id,auto"`
	Name      string    `db:"name"`
	MatchID   int64     `db:"match_id"`
	CreatedAt time.Time `db:"created_at,auto"`
}

type playerTableModel struct {
	ID            int64           `db:"id,auto"`
	Name          string          `db:"name"`
	Role          string          `db:"role"`
	MatchesPlayed sql.NullInt64   `db:"matches_played"`
	Runs          sql.NullInt64   `db:"runs"`
	Average       sql.NullFloat64 `db:"average"`
	StrikeRate    sql.NullFloat64 `db:"strike_rate"`
	TeamID        int64           `db:"team_id"`
	CreatedAt     time.Time       `db:"created_at,auto"`
}

func nullIntFromPtr(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloatFromPtr(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullIntToPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func nullFloatToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	out := v.Float64
	return &out
}
