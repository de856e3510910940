package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), ErrNotFound)

	dup := mapErr(&pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"})
	assert.ErrorIs(t, dup, ErrDuplicate)
	assert.Contains(t, dup.Error(), "categories_name_key")

	fk := mapErr(&pgconn.PgError{Code: "23503", ConstraintName: "post_likes_post_id_fkey"})
	assert.ErrorIs(t, fk, ErrNotFound)
	assert.NotErrorIs(t, fk, ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapErr(other))
}
