package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
	ErrCheckViolation      = errors.New("check constraint violated")
)

// ConstraintError carries the violated constraint name next to its kind.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Constraint)
}

func (e *ConstraintError) Is(target error) bool {
	return target == e.Kind
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// classify turns driver-specific constraint failures into ConstraintError.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConstraintError{Kind: ErrUniqueViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgForeignKeyViolation:
			return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgCheckViolation:
			return &ConstraintError{Kind: ErrCheckViolation, Constraint: pgErr.ConstraintName, Err: err}
		}
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &ConstraintError{Kind: ErrUniqueViolation, Constraint: sqliteConstraint(msg, "UNIQUE constraint failed"), Err: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: sqliteConstraint(msg, "FOREIGN KEY constraint failed"), Err: err}
	case strings.Contains(msg, "CHECK constraint failed"):
		return &ConstraintError{Kind: ErrCheckViolation, Constraint: sqliteConstraint(msg, "CHECK constraint failed"), Err: err}
	}
	return err
}

// sqliteConstraint extracts "users.email" from
// "constraint failed: UNIQUE constraint failed: users.email (2067)".
func sqliteConstraint(msg, marker string) string {
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimPrefix(msg[idx+len(marker):], ": ")
	if i := strings.Index(rest, " ("); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}
