package readstore

import (
	"context"
	"time"

	"venue-admin/internal/infra"
	"venue-admin/internal/infra/converter"
	"venue-admin/internal/infra/db"
	"venue-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteViewQueries interface {
	GetQuoteByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.QuoteRow, error)
	ListQuotesByActorFirstPage(ctx context.Context, db db.DBTX, actorID uuid.UUID, limit int32) ([]db.QuoteListRow, error)
	ListQuotesByActorKeyset(ctx context.Context, db db.DBTX, actorID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]db.QuoteListRow, error)
}

type QuoteReadStore struct {
	queries QuoteViewQueries
	db      db.DBTX
}

func NewQuoteReadStore(queries QuoteViewQueries, db db.DBTX) *QuoteReadStore {
	return &QuoteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *QuoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	row, err := r.queries.GetQuoteByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDriverErr("failed to get quote", err)
	}

	view, err := converter.QuoteRowToView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode quote", err, infra.KindInvalidData)
	}
	return view, nil
}

func (r *QuoteReadStore) FindByActorFirstPage(ctx context.Context, actorID uuid.UUID, limit int32) ([]*queries.QuoteListItem, error) {
	rows, err := r.queries.ListQuotesByActorFirstPage(ctx, r.db, actorID, limit)
	if err != nil {
		return nil, infra.WrapDriverErr("failed to list quotes first page", err)
	}
	return mapListRows(rows)
}

func (r *QuoteReadStore) FindByActorKeyset(ctx context.Context, actorID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.QuoteListItem, error) {
	rows, err := r.queries.ListQuotesByActorKeyset(ctx, r.db, actorID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapDriverErr("failed to list quotes by keyset", err)
	}
	return mapListRows(rows)
}

func mapListRows(rows []db.QuoteListRow) ([]*queries.QuoteListItem, error) {
	items := make([]*queries.QuoteListItem, 0, len(rows))
	for _, row := range rows {
		item, err := converter.QuoteListRowToItem(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode quote list row", err, infra.KindInvalidData)
		}
		items = append(items, item)
	}
	return items, nil
}
