package app

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxTracedQueryLength caps the db.statement attribute in bytes.
const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace so multi-line statements read as
// one line in the trace view, then truncates on a rune boundary.
func formatDBQueryForTrace(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	oneLine := strings.Join(fields, " ")
	if len(oneLine) <= maxTracedQueryLength {
		return oneLine
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(oneLine[cut]) {
		cut--
	}
	return oneLine[:cut] + "..."
}

// dbNameFromPath derives the db.name trace attribute from a SQLite file path.
func dbNameFromPath(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
