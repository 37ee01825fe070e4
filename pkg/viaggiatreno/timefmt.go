package viaggiatreno

import "time"

// requestTimeLayout is the timestamp shape the partenze/arrivi endpoints
// expect in the URL path. It matches the output of JavaScript's
// Date.toString(), e.g. "Mon Aug 24 2026 18:30:00 GMT+0000 (UTC)".
// The provider rejects anything else, so this layout is a wire contract.
const requestTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// FormatRequestTime serializes t for use as the board-time path segment.
// The zone offset and abbreviation of t's location are preserved.
func FormatRequestTime(t time.Time) string {
	return t.Format(requestTimeLayout)
}

// solutionsTimeLayout is the timestamp shape the soluzioniViaggioNew
// endpoint expects.
const solutionsTimeLayout = "2006-01-02T15:04:05"

// FormatSolutionsTime serializes t for the journey solutions endpoint.
func FormatSolutionsTime(t time.Time) string {
	return t.Format(solutionsTimeLayout)
}
