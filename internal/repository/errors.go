package repository

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by writes that matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey is returned when a foreign key constraint rejects a write.
	ErrForeignKey = errors.New("foreign key violation")
)

// MapDBError maps driver constraint violations onto the sentinels above.
// The mapping is string based so no driver package is needed here:
// sqlite, postgres (SQLSTATE 23505/23503) and mysql (1062/1451/1452).
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	switch {
	case strings.Contains(le, "foreign key"), strings.Contains(le, "23503"),
		strings.Contains(le, "1451"), strings.Contains(le, "1452"):
		return errors.Join(ErrForeignKey, err)
	case strings.Contains(le, "duplicate"), strings.Contains(le, "unique"),
		strings.Contains(le, "23505"), strings.Contains(le, "1062"):
		return errors.Join(ErrDuplicate, err)
	}
	return err
}
