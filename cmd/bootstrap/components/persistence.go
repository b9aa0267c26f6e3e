package components

import (
	"lending-ledger/internal/infra/memstore"
	"lending-ledger/internal/infra/readstore"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/infra/uow"
	"lending-ledger/internal/usecase/queries"
	"lending-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresStoreModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Item
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemReadQueries)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(shared.Directory)),
		),
	),
)

// MemoryStoreModule keeps everything in process. State is lost on exit.
var MemoryStoreModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		func(s *memstore.Store) queries.ItemReadStore { return s.Items() },
		func(s *memstore.Store) queries.RequestReadStore { return s.Requests() },
		func(s *memstore.Store) *memstore.UserReader { return s.Users() },
		func(r *memstore.UserReader) queries.UserReadStore { return r },
		func(r *memstore.UserReader) shared.Directory { return r },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
