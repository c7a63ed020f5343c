package sqlite

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == code
}

func isUniqueViolation(err error) bool {
	return isConstraint(err, sqlite3.ErrConstraintUnique) || isConstraint(err, sqlite3.ErrConstraintPrimaryKey)
}

func isForeignKeyViolation(err error) bool {
	return isConstraint(err, sqlite3.ErrConstraintForeignKey)
}
