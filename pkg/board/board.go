package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/binario/binario/pkg/stations"
	"github.com/binario/binario/pkg/viaggiatreno"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
)

// ErrNoLiveData is returned when the provider has no live journey for a
// scheduled train. One such train fails the whole board; a board with
// silently missing delay or platform data would be worse than no board.
var ErrNoLiveData = errors.New("no live updates from the provider")

// Board is the reconciled departure board of one station at one instant.
type Board struct {
	Station stations.Station
	Rows    []Row
}

// Empty reports whether no trains were scheduled at all, which is a valid
// outcome distinct from any failure.
func (b *Board) Empty() bool {
	return len(b.Rows) == 0
}

// Aggregator runs the board pipeline: fetch, concurrent enrichment,
// reconciliation.
type Aggregator struct {
	Source Source

	// Now supplies the current instant when no board time is given.
	// Defaults to time.Now.
	Now func() time.Time
}

// Assemble builds the departure board for a station. A zero at means "now"
// in UTC. Rows come back in the provider's board order.
func (a *Aggregator) Assemble(ctx context.Context, station stations.Station, at time.Time) (*Board, error) {
	if at.IsZero() {
		at = a.now().UTC()
	}

	trains, err := a.Source.Departures(ctx, station, viaggiatreno.FormatRequestTime(at))
	if err != nil {
		return nil, fmt.Errorf("fetching departures for %s: %w", station.ID, err)
	}

	if len(trains) == 0 {
		return &Board{Station: station}, nil
	}

	journeys, err := a.enrich(ctx, trains)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(trains))
	for i := range trains {
		rows[i], err = Reconcile(trains[i], journeys[i], station)
		if err != nil {
			return nil, err
		}
	}

	return &Board{Station: station, Rows: rows}, nil
}

// enrich fetches the live journey of every train, one goroutine per board
// row. Result order matches input order regardless of completion order; a
// single failure fails the whole call.
func (a *Aggregator) enrich(ctx context.Context, trains []ScheduledTrain) ([]*Journey, error) {
	log.Debug().Int("trains", len(trains)).Msg("Enriching departure board")

	mapper := iter.Mapper[ScheduledTrain, *Journey]{MaxGoroutines: len(trains)}

	return mapper.MapErr(trains, func(train *ScheduledTrain) (*Journey, error) {
		journey, err := a.Source.JourneyStatus(ctx, *train)
		if err != nil {
			return nil, fmt.Errorf("fetching status of train %s: %w", train.Number, err)
		}
		if journey == nil {
			return nil, fmt.Errorf("train %s: %w", train.Number, ErrNoLiveData)
		}

		return journey, nil
	})
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}

	return time.Now()
}
