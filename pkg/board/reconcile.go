package board

import (
	"errors"
	"fmt"

	"github.com/binario/binario/pkg/stations"
	"golang.org/x/exp/slices"
)

// ErrStopNotFound is returned when a journey's recorded stops do not
// include the station whose board is being built. The provider omits stops
// on some runs (Saronno is a known example), so the row cannot be
// reconciled; the whole board fails rather than showing a silently
// schedule-only row.
var ErrStopNotFound = errors.New("station not among the journey's recorded stops")

// Reconcile merges one scheduled train with its live journey into a display
// row, relative to the station whose board is being built.
//
// Platform: the stop's actual departure platform wins when present and
// different from the scheduled one. Delay: the stop's own delay wins; a
// zero falls back to the run-level delay. Numbers: the full recorded
// change history, "/"-joined.
func Reconcile(train ScheduledTrain, journey *Journey, station stations.Station) (Row, error) {
	stopIndex := slices.IndexFunc(journey.Stops, func(s Stop) bool {
		return s.StationID == station.ID
	})
	if stopIndex < 0 {
		return Row{}, fmt.Errorf("train %s at %s: %w", train.Number, station.ID, ErrStopNotFound)
	}

	stop := journey.Stops[stopIndex]

	delay := stop.Delay
	if delay == 0 {
		delay = journey.Delay
	}

	label := train.Number
	if train.Category != "" {
		label = train.Category + " " + train.Number
	}

	return Row{
		Label:         label,
		Numbers:       journey.TrainNumbers,
		Destination:   train.Destination,
		DepartureTime: train.DepartureTime,
		Delay:         delay,
		HasDelay:      delay != 0,
		Platform:      stop.DeparturePlatform(),
	}, nil
}
