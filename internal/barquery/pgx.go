package barquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// PgxConn is the part of *pgx.Conn, *pgxpool.Pool and pgx.Tx the queries use.
//
//go:generate mockgen -source pgx.go -destination pgx_mock.go -package barquery
type PgxConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// NewPgxExecutor returns a SuspendingExecutor over a pgx handle.
func NewPgxExecutor(conn PgxConn) *SuspendingExecutor {
	return &SuspendingExecutor{
		exec: func(ctx context.Context, query string, args []any) (int64, error) {
			tag, err := conn.Exec(ctx, query, args...)
			if err != nil {
				return 0, err
			}

			return tag.RowsAffected(), nil
		},
	}
}
