package queries

import (
	"context"
	"time"

	"venue-admin/internal/infra"
	"venue-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound = errs.New("quote not found")
	ErrQuoteAccess   = errs.New("quote belongs to another user")
)

type QuoteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	FindByActorFirstPage(ctx context.Context, actorID uuid.UUID, limit int32) ([]*QuoteListItem, error)
	FindByActorKeyset(ctx context.Context, actorID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuoteListItem, error)
}

type QuoteQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*QuoteView, error)
	List(ctx context.Context, actorID uuid.UUID, cursor *Cursor, limit int) ([]*QuoteListItem, *Cursor, error)
}

type quoteQueriesImpl struct {
	repo QuoteReadStore
}

func NewQuoteQueries(repo QuoteReadStore) QuoteQueries {
	return &quoteQueriesImpl{repo: repo}
}

// GetByID only returns quotes the actor issued.
func (q *quoteQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*QuoteView, error) {
	qv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	if qv.ActorID != actorID {
		return nil, ErrQuoteAccess
	}
	return qv, nil
}

func (q *quoteQueriesImpl) List(ctx context.Context, actorID uuid.UUID, cursor *Cursor, limit int) ([]*QuoteListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*QuoteListItem
	var err error
	if cursor.IsFirstPage() {
		rows, err = q.repo.FindByActorFirstPage(ctx, actorID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByActorKeyset(ctx, actorID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
