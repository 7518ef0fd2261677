package infra

import (
	"context"
	"log/slog"
	"strings"

	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindInvalidData  RepositoryErrorKind = "INVALID_DATA"
)

const (
	pgErrCodeUniqueViolation = "23505"
	pgErrClassDataException  = "22"
)

// RepositoryError hides driver errors from the usecase layer, which only
// branches on Kind.
type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err == nil {
		return string(e.Kind) + ": " + e.msg
	}
	return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// KindOf maps a driver error to a repository kind. Anything it does not
// recognise is a DB failure.
func KindOf(err error) RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgErrCodeUniqueViolation:
			return KindDuplicateKey
		case strings.HasPrefix(pgErr.Code, pgErrClassDataException):
			return KindInvalidData
		}
	}
	return KindDBFailure
}

// WrapRepoErr defaults to KindDBFailure when no kind is given. Not-found is
// logged at debug level since callers routinely expect it.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelError
	if k == KindNotFound {
		level = slog.LevelDebug
	}
	attrs := []any{slog.String("kind", string(k))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	slog.Log(context.Background(), level, "repository error: "+msg, attrs...)

	return RepositoryError{Kind: k, msg: msg, err: err}
}

// WrapDriverErr classifies err with KindOf before wrapping it.
func WrapDriverErr(msg string, err error) error {
	return WrapRepoErr(msg, err, KindOf(err))
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
