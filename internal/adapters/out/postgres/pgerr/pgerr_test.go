package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"restaurant/internal/adapters/out/postgres/pgerr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "orders_pkey"}

	assert.True(t, pgerr.IsUniqueViolation(dup))
	assert.True(t, pgerr.IsUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, pgerr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, pgerr.IsUniqueViolation(errors.New("boom")))
	assert.Equal(t, "orders_pkey", pgerr.ConstraintName(dup))
	assert.Empty(t, pgerr.ConstraintName(errors.New("boom")))
}
