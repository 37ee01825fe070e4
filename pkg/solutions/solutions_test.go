package solutions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/binario/binario/pkg/stations"
	"github.com/binario/binario/pkg/viaggiatreno"
)

func TestFetch(t *testing.T) {
	var requestedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(`{
			"soluzioni": [
				{
					"durata": "2:05",
					"vehicles": [
						{
							"categoriaDescrizione": "FR",
							"numeroTreno": "9742",
							"orarioPartenza": "2026-08-24T18:42:00",
							"orarioArrivo": "2026-08-24T19:45:00",
							"destinazione": "BOLOGNA CENTRALE"
						},
						{
							"categoriaDescrizione": "FR",
							"numeroTreno": "8826",
							"orarioPartenza": "2026-08-24T19:58:00",
							"orarioArrivo": "2026-08-24T20:47:00",
							"destinazione": "VENEZIA S. LUCIA"
						}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	client := viaggiatreno.NewClientWithHTTP(server.URL, "binario-test", server.Client())

	origin := stations.Station{Name: "MILANO CENTRALE", ID: "S01700"}
	destination := stations.Station{Name: "VENEZIA S. LUCIA", ID: "S02593"}
	at := time.Date(2026, time.August, 24, 18, 30, 0, 0, time.UTC)

	result, err := Fetch(context.Background(), client, origin, destination, at)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// The endpoint is keyed by station IDs without their leading letter
	if !strings.HasPrefix(requestedPath, "/soluzioniViaggioNew/01700/02593/") {
		t.Errorf("unexpected request path %q", requestedPath)
	}

	if len(result) != 1 {
		t.Fatalf("expected 1 solution, got %d", len(result))
	}

	solution := result[0]
	if solution.Duration != "2h05" {
		t.Errorf("duration = %q, expected %q", solution.Duration, "2h05")
	}
	if len(solution.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(solution.Legs))
	}

	first := solution.Legs[0]
	if first.Number != "9742" || first.Destination != "BOLOGNA CENTRALE" {
		t.Errorf("unexpected first leg %+v", first)
	}
	if first.Departure.Format("15:04") != "18:42" || first.Arrival.Format("15:04") != "19:45" {
		t.Errorf("unexpected first leg times %+v", first)
	}
}
