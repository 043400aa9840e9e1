package barquery

import "context"

// Pending holds the eventual row count of one submitted statement.
type Pending struct {
	done chan struct{}
	rows int64
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolved returns a Pending that has already completed with rows and err.
func Resolved(rows int64, err error) *Pending {
	p := newPending()
	p.resolve(rows, err)

	return p
}

func (p *Pending) resolve(rows int64, err error) {
	p.rows = rows
	p.err = err
	close(p.done)
}

// Done is closed once the statement has completed or failed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the statement completes and returns its row count.
func (p *Pending) Wait() (int64, error) {
	<-p.done
	return p.rows, p.err
}

// Await is like Wait but gives up with ctx.Err() once ctx is done.
func (p *Pending) Await(ctx context.Context) (int64, error) {
	select {
	case <-p.done:
		return p.rows, p.err
	default:
	}

	select {
	case <-p.done:
		return p.rows, p.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
