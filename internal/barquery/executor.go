package barquery

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/barstore/pkg/dbpkg"
)

// Executor runs a bound statement on a connection handle.
type Executor interface {
	Submit(ctx context.Context, name, query string, args []any) *Pending
}

// BlockingExecutor runs statements on the calling goroutine.
//
// Cancellation of the caller's context is not propagated: once submitted a
// statement runs to completion or failure.
type BlockingExecutor struct {
	db dbpkg.SQLInterface
}

// NewBlockingExecutor returns a BlockingExecutor over db.
func NewBlockingExecutor(db dbpkg.SQLInterface) *BlockingExecutor {
	return &BlockingExecutor{db: db}
}

// Submit executes the statement and returns its already resolved result.
func (e *BlockingExecutor) Submit(ctx context.Context, name, query string, args []any) *Pending {
	rows, err := execSQL(context.WithoutCancel(ctx), e.db, query, args)
	logResult(ctx, name, rows, err)

	return Resolved(rows, err)
}

type execFunc func(ctx context.Context, query string, args []any) (int64, error)

// SuspendingExecutor runs every statement on its own goroutine bound to the
// caller's context, so cancellation and deadlines reach the driver.
type SuspendingExecutor struct {
	exec execFunc
}

// NewSuspendingExecutor returns a SuspendingExecutor over a database/sql handle.
func NewSuspendingExecutor(db dbpkg.SQLInterface) *SuspendingExecutor {
	return &SuspendingExecutor{
		exec: func(ctx context.Context, query string, args []any) (int64, error) {
			return execSQL(ctx, db, query, args)
		},
	}
}

// Submit starts the statement and returns without waiting for it.
func (e *SuspendingExecutor) Submit(ctx context.Context, name, query string, args []any) *Pending {
	p := newPending()

	go func() {
		rows, err := e.exec(ctx, query, args)
		logResult(ctx, name, rows, err)
		p.resolve(rows, err)
	}()

	return p
}

func execSQL(ctx context.Context, db dbpkg.SQLInterface, query string, args []any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func logResult(ctx context.Context, name string, rows int64, err error) {
	l := zerolog.Ctx(ctx)

	if err == nil {
		l.Debug().Str("statement", name).Int64("rows_affected", rows).Send()
		return
	}

	e := l.Error().Err(err).Str("statement", name)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		e = e.Str("sqlstate", string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		e = e.Str("sqlstate", pgErr.Code)
	}

	e.Send()
}
