package main

import (
	"path/filepath"
	"testing"
)

func TestParseSteps(t *testing.T) {
	if steps, err := parseSteps(nil); err != nil || steps != 1 {
		t.Fatalf("expected default of 1 step, got %d (%v)", steps, err)
	}
	if steps, err := parseSteps([]string{" 3 "}); err != nil || steps != 3 {
		t.Fatalf("expected 3 steps, got %d (%v)", steps, err)
	}
	for _, raw := range []string{"0", "-2", "x"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for steps %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("5"); err != nil || v != 5 {
		t.Fatalf("unexpected version %d (%v)", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseTarget("2"); err != nil || v != 2 {
		t.Fatalf("unexpected target %d (%v)", v, err)
	}
	if _, err := parseTarget("two"); err == nil {
		t.Fatalf("expected error for non-numeric target")
	}
}

func TestSQLiteDatabaseURL(t *testing.T) {
	got := sqliteDatabaseURL(filepath.Join("data", "league.db"))
	if got != "sqlite3://data/league.db?_foreign_keys=on" {
		t.Fatalf("unexpected database url: %q", got)
	}
}

func TestResolveMigrationsDir_UsesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := resolveMigrationsDir()
	if err != nil {
		t.Fatalf("resolve migrations dir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}
