package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the given identifier does not resolve to a row.
	ErrNotFound = errors.New("not found")
	// ErrConflict wraps uniqueness and foreign-key violations.
	ErrConflict = errors.New("conflict")
)

// wrapErr maps gorm errors onto the package sentinels so callers can use
// errors.Is without importing gorm.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
