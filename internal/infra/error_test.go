//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"venue-admin/internal/infra"
	"venue-admin/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: errs.Wrap(pgx.ErrNoRows, "get quote"), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "numeric out of range", err: &pgconn.PgError{Code: "22003"}, want: infra.KindInvalidData},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.KindOf(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("timeout")

	err := infra.WrapRepoErr("failed to get quote", cause)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_FAILURE: failed to get quote")
}

func TestWrapDriverErr(t *testing.T) {
	err := infra.WrapDriverErr("failed to get quote", pgx.ErrNoRows)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(errors.New("other"), infra.KindNotFound))
}
