package querybuilder

import (
	"database/sql"
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("match_id", int64(3))).
		OrderBy("id").
		Limit(2).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE match_id = ? ORDER BY id LIMIT 2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrGroupsWithAnd(t *testing.T) {
	query, args, err := Select("1").
		From("users").
		Where(
			Or(Eq("username", "alice"), Eq("email", "alice@example.com")),
			Eq("role", "admin"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT 1 FROM users WHERE (username = ? OR email = ?) AND role = ? LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "alice" || args[2] != "admin" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyOrMatchesNothing(t *testing.T) {
	query, _, err := Select("id").From("players").Where(Or()).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("name", "match_id").
		Values("India XI", int64(1)).
		Values("Australia XI", int64(1)).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (name, match_id) VALUES (?, ?), (?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "Australia XI" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("name", "match_id").Values("only-name").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModel_SkipsAutoColumns(t *testing.T) {
	type row struct {
		ID        int64         `db:"id,auto"`
		Name      string        `db:"name"`
		Runs      sql.NullInt64 `db:"runs"`
		CreatedAt time.Time     `db:"created_at,auto"`
		internal  string
	}

	query, args, err := InsertModel("players", row{ID: 9, Name: "Rohit Sharma", internal: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO players (name, runs) VALUES (?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Rohit Sharma" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
