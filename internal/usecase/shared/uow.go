package shared

import (
	"context"

	"venue-admin/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Quotes() QuoteRepository
	DB() db.DBTX
}

type QuoteRepository interface {
	Create(ctx context.Context, tx db.DBTX, q *QuoteRecord) (*QuoteRecord, error)
}
