// Package solutions queries journey options between two stations.
package solutions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/binario/binario/pkg/render"
	"github.com/binario/binario/pkg/stations"
	"github.com/binario/binario/pkg/viaggiatreno"
)

// legTimeLayout is the shape of the per-leg timestamps in the solutions
// response.
const legTimeLayout = "2006-01-02T15:04:05"

// Fetch queries journey solutions departing at the given instant and maps
// them into presentable form.
func Fetch(ctx context.Context, client *viaggiatreno.Client, origin stations.Station, destination stations.Station, at time.Time) ([]render.Solution, error) {
	response, err := client.SoluzioniViaggio(ctx,
		locationCode(origin), locationCode(destination), viaggiatreno.FormatSolutionsTime(at))
	if err != nil {
		return nil, fmt.Errorf("fetching journey solutions: %w", err)
	}

	solutions := make([]render.Solution, len(response.Soluzioni))
	for i, solution := range response.Soluzioni {
		legs := make([]render.SolutionLeg, len(solution.Vehicles))
		for j, vehicle := range solution.Vehicles {
			departure, err := time.Parse(legTimeLayout, vehicle.OrarioPartenza)
			if err != nil {
				return nil, fmt.Errorf("leg departure time %q: %w", vehicle.OrarioPartenza, err)
			}
			arrival, err := time.Parse(legTimeLayout, vehicle.OrarioArrivo)
			if err != nil {
				return nil, fmt.Errorf("leg arrival time %q: %w", vehicle.OrarioArrivo, err)
			}

			legs[j] = render.SolutionLeg{
				Departure:   departure,
				Arrival:     arrival,
				Category:    vehicle.CategoriaDescrizione,
				Number:      vehicle.NumeroTreno,
				Destination: vehicle.Destinazione,
			}
		}

		solutions[i] = render.Solution{
			Duration: formatDuration(solution.Durata),
			Legs:     legs,
		}
	}

	return solutions, nil
}

// locationCode is the station ID without its leading letter, the key shape
// the solutions endpoint expects.
func locationCode(station stations.Station) string {
	if len(station.ID) < 2 {
		return station.ID
	}

	return station.ID[1:]
}

func formatDuration(durata string) string {
	return strings.Replace(durata, ":", "h", 1)
}
