// Package barservice manages business logic layer of bars.
package barservice

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/go-petr/barstore/internal/barquery"
	"github.com/go-petr/barstore/internal/domain"
)

// Querier provides blocking data access needed by bar service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package barservice
type Querier interface {
	DeleteBarByID(ctx context.Context, arg domain.DeleteBarByIDParams) (int64, error)
	DeleteBarByIDAndName(ctx context.Context, arg domain.DeleteBarByIDAndNameParams) (int64, error)
}

// AsyncQuerier provides non-blocking data access needed by bar service layer.
type AsyncQuerier interface {
	DeleteBarByID(ctx context.Context, arg domain.DeleteBarByIDParams) *barquery.Pending
}

// Service facilitates bar service layer logic.
type Service struct {
	querier      Querier
	asyncQuerier AsyncQuerier
}

// New returns bar service struct to manage bar business logic.
func New(q Querier, aq AsyncQuerier) *Service {
	return &Service{
		querier:      q,
		asyncQuerier: aq,
	}
}

// Delete removes bars with the given id and returns the number of deleted rows.
// A non-empty name narrows the match to bars with that name.
func (s *Service) Delete(ctx context.Context, id int64, name string) (int64, error) {
	l := zerolog.Ctx(ctx)

	var (
		rows int64
		err  error
	)

	if name == "" {
		rows, err = s.querier.DeleteBarByID(ctx, domain.DeleteBarByIDParams{ID: id})
	} else {
		rows, err = s.querier.DeleteBarByIDAndName(ctx, domain.DeleteBarByIDAndNameParams{ID: id, Name: name})
	}

	if err != nil {
		l.Error().Err(err).Int64("id", id).Send()
		return 0, err
	}

	return rows, nil
}

// DeleteMany removes bars with any of the given ids.
//
// All deletes are submitted before any is awaited. It returns the number of
// rows removed by the deletes that succeeded together with every failure.
func (s *Service) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	pending := make([]*barquery.Pending, len(ids))
	for i, id := range ids {
		pending[i] = s.asyncQuerier.DeleteBarByID(ctx, domain.DeleteBarByIDParams{ID: id})
	}

	var (
		total int64
		errs  *multierror.Error
	)

	for i, p := range pending {
		rows, err := p.Await(ctx)
		if err != nil {
			l.Error().Err(err).Int64("id", ids[i]).Send()
			errs = multierror.Append(errs, err)

			continue
		}

		total += rows
	}

	return total, errs.ErrorOrNil()
}
