package barquery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolved(t *testing.T) {
	wantErr := errors.New("boom")

	p := Resolved(3, wantErr)

	select {
	case <-p.Done():
	default:
		t.Fatal("Resolved(3, err).Done() is not closed")
	}

	rows, err := p.Wait()
	require.Equal(t, int64(3), rows)
	require.Same(t, wantErr, err)

	// A resolved result wins over an already cancelled context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err = p.Await(ctx)
	require.Equal(t, int64(3), rows)
	require.Same(t, wantErr, err)
}

func TestAwaitCancelled(t *testing.T) {
	p := newPending()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := p.Await(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, rows)

	p.resolve(1, nil)

	rows, err = p.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)
}
