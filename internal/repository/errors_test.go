package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       error
		constraint string
	}{
		{
			name:       "postgres unique",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}),
			kind:       ErrUniqueViolation,
			constraint: "idx_users_email",
		},
		{
			name:       "postgres foreign key",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "fk_customers_orders"},
			kind:       ErrForeignKeyViolation,
			constraint: "fk_customers_orders",
		},
		{
			name:       "postgres check",
			err:        &pgconn.PgError{Code: "23514", ConstraintName: "chk_users_age"},
			kind:       ErrCheckViolation,
			constraint: "chk_users_age",
		},
		{
			name:       "sqlite unique",
			err:        errors.New("constraint failed: UNIQUE constraint failed: users.phone (2067)"),
			kind:       ErrUniqueViolation,
			constraint: "users.phone",
		},
		{
			name: "sqlite foreign key",
			err:  errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			kind: ErrForeignKeyViolation,
		},
		{
			name:       "sqlite check",
			err:        errors.New("constraint failed: CHECK constraint failed: chk_users_age (275)"),
			kind:       ErrCheckViolation,
			constraint: "chk_users_age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.kind)

			var constraintErr *ConstraintError
			if assert.True(t, errors.As(got, &constraintErr)) {
				assert.Equal(t, tt.constraint, constraintErr.Constraint)
			}
		})
	}
}

func TestClassifyPassesThroughOtherErrors(t *testing.T) {
	assert.Nil(t, classify(nil))

	plain := errors.New("connection reset")
	assert.Same(t, plain, classify(plain))

	pgErr := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(pgErr), classify(pgErr))
}
