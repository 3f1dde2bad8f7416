package storeerr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error kinds surfaced by the feed engine and the bulk loader. Callers
// distinguish "nothing found" from "operation could not complete" with
// errors.Is against these values.
var (
	ErrNotFound             = errors.New("not found")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrStorageUnavailable   = errors.New("storage unavailable")
)

// pgForeignKeyViolation is the Postgres SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

// NotFoundf wraps ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// InvalidArgumentf wraps ErrInvalidArgument with a formatted detail message.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Classify maps a raw storage-layer error onto one of the typed kinds.
// Context cancellation and deadline errors pass through unchanged so the
// caller sees the abort rather than a storage failure. Anything that is not
// recognisable as a constraint or lookup failure is treated as the store
// being unavailable; it is never swallowed.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrReferentialIntegrity) ||
		errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	// SQLite (used by the test stores) reports the violation as plain text.
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
