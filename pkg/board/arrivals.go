package board

import (
	"context"
	"fmt"
	"time"

	"github.com/binario/binario/pkg/stations"
	"github.com/binario/binario/pkg/viaggiatreno"
)

// ScheduledArrival is one row of a station's arrival board. Arrivals are
// shown as scheduled; the provider's arrival records carry no journey key
// worth enriching against.
type ScheduledArrival struct {
	Arrived     bool
	ArrivalTime string
	Origin      string
	Category    string
	Number      string
}

// ArrivalBoard is the arrival board of one station at one instant.
type ArrivalBoard struct {
	Station stations.Station
	Rows    []ScheduledArrival
}

// Empty reports whether no trains are due at all.
func (b *ArrivalBoard) Empty() bool {
	return len(b.Rows) == 0
}

// Arrivals builds the arrival board for a station. A zero at means "now"
// in UTC.
func (a *Aggregator) Arrivals(ctx context.Context, station stations.Station, at time.Time) (*ArrivalBoard, error) {
	if at.IsZero() {
		at = a.now().UTC()
	}

	rows, err := a.Source.Arrivals(ctx, station, viaggiatreno.FormatRequestTime(at))
	if err != nil {
		return nil, fmt.Errorf("fetching arrivals for %s: %w", station.ID, err)
	}

	return &ArrivalBoard{Station: station, Rows: rows}, nil
}
