package repository

import (
	"context"

	"venue-admin/internal/infra"
	"venue-admin/internal/infra/converter"
	"venue-admin/internal/infra/db"
	"venue-admin/internal/pkg/pgconv"
	"venue-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type QuoteWriteQueries interface {
	CreateQuote(ctx context.Context, db db.DBTX, arg db.QuoteRow) (pgtype.Timestamptz, error)
}

type QuoteRepository struct {
	queries QuoteWriteQueries
}

func NewQuoteRepository(queries QuoteWriteQueries) *QuoteRepository {
	return &QuoteRepository{queries: queries}
}

func (r *QuoteRepository) Create(ctx context.Context, tx db.DBTX, q *shared.QuoteRecord) (*shared.QuoteRecord, error) {
	row, err := converter.QuoteToRow(q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode quote", err, infra.KindInvalidData)
	}

	createdAt, err := r.queries.CreateQuote(ctx, tx, row)
	if err != nil {
		return nil, infra.WrapDriverErr("failed to create quote", err)
	}

	saved := *q
	saved.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &saved, nil
}
