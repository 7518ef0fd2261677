package components

import (
	"venue-admin/internal/infra/db"
	"venue-admin/internal/infra/readstore"
	"venue-admin/internal/infra/uow"
	"venue-admin/internal/usecase/queries"
	"venue-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		func(q *db.Queries) readstore.QuoteViewQueries { return q },
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.QuoteReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *db.Queries {
	return db.NewQueries()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
