// Package board assembles live departure boards: it fetches the scheduled
// departure list for a station, enriches every train concurrently with its
// live journey status, and reconciles the two sources into display rows.
package board

// ScheduledTrain is one row of a station's departure board as reported by
// the provider at fetch time. It is immutable; live fields end up on Row.
type ScheduledTrain struct {
	Departed      bool
	DepartureDate int64 // epoch milliseconds, the provider's journey key
	DepartureTime string
	OriginID      string
	Destination   string
	Category      string
	Number        string
}

// Journey is the live state of one train's full run as of the provider's
// last update. It is built once per enrichment call and discarded after
// reconciliation.
type Journey struct {
	LastUpdateTime    int64 // epoch milliseconds, zero when never detected
	LastUpdateStation string

	// Delay is the run-level delay: departure delay at the first station of
	// the run, arrival delay elsewhere
	Delay int

	// TrainNumbers starts as the queried number and gains a "/"-joined
	// segment for every recorded number change, in occurrence order
	TrainNumbers string

	// Stops is ordered by journey progression, origin to destination
	Stops []Stop
}

// Stop is a single station touchpoint within a Journey. Empty platform
// strings mean the provider has not recorded a value; an actual value is
// authoritative over the scheduled one once present.
type Stop struct {
	StationID string
	Name      string

	ScheduledDeparturePlatform string
	ActualDeparturePlatform    string
	ScheduledArrivalPlatform   string
	ActualArrivalPlatform      string

	DepartureDelay int
	ArrivalDelay   int
	Delay          int

	ScheduledDeparture int64
	ActualDeparture    int64
	ScheduledArrival   int64
	ActualArrival      int64
}

// DeparturePlatformChanged reports whether the provider has recorded an
// actual departure platform different from the scheduled one.
func (s Stop) DeparturePlatformChanged() bool {
	return s.ActualDeparturePlatform != "" && s.ActualDeparturePlatform != s.ScheduledDeparturePlatform
}

// DeparturePlatform is the actual departure platform if it has changed,
// otherwise the scheduled one (which may itself be empty).
func (s Stop) DeparturePlatform() string {
	if s.DeparturePlatformChanged() {
		return s.ActualDeparturePlatform
	}

	return s.ScheduledDeparturePlatform
}

// Row is one reconciled, display-ready departure. Derived, never mutated.
type Row struct {
	// Label is the category and original number, e.g. "REG 2025"
	Label string
	// Numbers is the full "/"-joined number history, e.g. "2025/2026"
	Numbers       string
	Destination   string
	DepartureTime string

	// Delay in minutes; HasDelay false conflates "on time" with "no delay
	// recorded", matching the provider's own reporting
	Delay    int
	HasDelay bool

	Platform string
}
