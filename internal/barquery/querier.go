package barquery

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/go-petr/barstore/internal/domain"
	"github.com/go-petr/barstore/pkg/dbpkg"
)

// Querier runs the bar statements on the calling goroutine.
type Querier interface {
	DeleteBarByID(ctx context.Context, arg domain.DeleteBarByIDParams) (int64, error)
	DeleteBarByIDAndName(ctx context.Context, arg domain.DeleteBarByIDAndNameParams) (int64, error)
}

// AsyncQuerier submits the bar statements and hands back their pending results.
type AsyncQuerier interface {
	DeleteBarByID(ctx context.Context, arg domain.DeleteBarByIDParams) *Pending
	DeleteBarByIDAndName(ctx context.Context, arg domain.DeleteBarByIDAndNameParams) *Pending
}

var (
	_ Querier      = (*SyncQueries)(nil)
	_ AsyncQuerier = (*Queries)(nil)
)

// Queries binds statement params and submits them to an Executor.
type Queries struct {
	db Executor
}

// New returns Queries over db.
func New(db Executor) *Queries {
	return &Queries{db: db}
}

// NewAsyncQuerier returns Queries that run each statement on its own goroutine
// against conn.
func NewAsyncQuerier(conn PgxConn) *Queries {
	return New(NewPgxExecutor(conn))
}

// WithTx returns Queries bound to a transaction the caller owns.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return NewAsyncQuerier(tx)
}

// SyncQueries waits for every statement it submits.
type SyncQueries struct {
	q *Queries
}

// NewQuerier returns SyncQueries that block on db.
func NewQuerier(db dbpkg.SQLInterface) *SyncQueries {
	return &SyncQueries{q: New(NewBlockingExecutor(db))}
}

// WithTx returns SyncQueries bound to a transaction the caller owns.
func (s *SyncQueries) WithTx(tx *sql.Tx) *SyncQueries {
	return NewQuerier(tx)
}

// DeleteBarByID deletes the bar with the given id. Zero rows is not an error.
func (s *SyncQueries) DeleteBarByID(ctx context.Context, arg domain.DeleteBarByIDParams) (int64, error) {
	return s.q.DeleteBarByID(ctx, arg).Wait()
}

// DeleteBarByIDAndName deletes the bar matching both id and name.
func (s *SyncQueries) DeleteBarByIDAndName(ctx context.Context, arg domain.DeleteBarByIDAndNameParams) (int64, error) {
	return s.q.DeleteBarByIDAndName(ctx, arg).Wait()
}
