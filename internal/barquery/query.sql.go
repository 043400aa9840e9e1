// Package barquery executes the bar table statements and reports affected rows.
package barquery

import (
	"context"

	"github.com/go-petr/barstore/internal/domain"
)

const deleteBarByID = `-- name: DeleteBarByID :execrows
DELETE FROM bar WHERE id = :id
`

const deleteBarByIDAndName = `-- name: DeleteBarByIDAndName :execrows
DELETE FROM bar WHERE id = :id AND name = :name
`

var (
	deleteBarByIDStmt        = MustPrepare[domain.DeleteBarByIDParams](deleteBarByID)
	deleteBarByIDAndNameStmt = MustPrepare[domain.DeleteBarByIDAndNameParams](deleteBarByIDAndName)
)

// DeleteBarByID deletes the bar with the given id.
func (q *Queries) DeleteBarByID(ctx context.Context, arg domain.DeleteBarByIDParams) *Pending {
	return submit(ctx, q.db, deleteBarByIDStmt, arg)
}

// DeleteBarByIDAndName deletes the bar matching both id and name.
func (q *Queries) DeleteBarByIDAndName(ctx context.Context, arg domain.DeleteBarByIDAndNameParams) *Pending {
	return submit(ctx, q.db, deleteBarByIDAndNameStmt, arg)
}

func submit[P any](ctx context.Context, db Executor, s *Statement[P], arg P) *Pending {
	return db.Submit(ctx, s.Name, s.SQL, s.Bind(arg))
}
