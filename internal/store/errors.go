package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/uptrace/bun/driver/pgdriver"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert violates a unique constraint.
var ErrConflict = errors.New("unique constraint violation")

// isUniqueViolation reports whether err is a Postgres unique-constraint
// failure (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Field('C') == pgerrcode.UniqueViolation
}
