package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the query surface repositories depend on. It is implemented by
// *pgxpool.Pool in production and by pgxmock in repository tests.
//
// Every operation of this service is a single scoped statement, so there is
// no transaction manager here: the row-level optimistic version check does
// the work a read-modify-write transaction would otherwise do.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
