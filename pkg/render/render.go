// Package render draws boards and stats on the terminal. It has no
// knowledge of the provider; it only formats what the pipeline hands over.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Presenter writes human-readable output to Out.
type Presenter struct {
	Out io.Writer
}

// DepartureRow is one reconciled departure ready for display.
type DepartureRow struct {
	Train       string
	Destination string
	Departure   string
	Platform    string

	Delay    int
	HasDelay bool
}

// ArrivalRow is one scheduled arrival ready for display.
type ArrivalRow struct {
	Train   string
	Origin  string
	Arrival string
}

// Departures renders the departure board of a station. An empty board is
// announced explicitly rather than drawn as a bare table.
func (p Presenter) Departures(stationName string, rows []DepartureRow) {
	fmt.Fprintln(p.Out, text.Bold.Sprintf("Partenze da %s", stationName))

	if len(rows) == 0 {
		fmt.Fprintln(p.Out, "Nessun treno in partenza")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Treno", "Destinazione", "Partenza", "Ritardo", "Binario"})

	for _, row := range rows {
		t.AppendRow(table.Row{row.Train, row.Destination, row.Departure, delayBadge(row.Delay, row.HasDelay), row.Platform})
	}

	t.Render()
}

// Arrivals renders the arrival board of a station.
func (p Presenter) Arrivals(stationName string, rows []ArrivalRow) {
	fmt.Fprintln(p.Out, text.Bold.Sprintf("Arrivi a %s", stationName))

	if len(rows) == 0 {
		fmt.Fprintln(p.Out, "Nessun treno in arrivo")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Treno", "Provenienza", "Arrivo"})

	for _, row := range rows {
		t.AppendRow(table.Row{row.Train, row.Origin, row.Arrival})
	}

	t.Render()
}

// SolutionLeg is one train leg of a journey solution.
type SolutionLeg struct {
	Departure   time.Time
	Arrival     time.Time
	Category    string
	Number      string
	Destination string
}

// Solution is one door-to-door journey option.
type Solution struct {
	Duration string
	Legs     []SolutionLeg
}

// Solutions renders journey options between two stations, with the
// transfer wait between consecutive legs.
func (p Presenter) Solutions(origin string, destination string, solutions []Solution) {
	fmt.Fprintln(p.Out, text.Bold.Sprintf("Soluzioni di viaggio da %s a %s", origin, destination))

	if len(solutions) == 0 {
		fmt.Fprintln(p.Out, "Nessuna soluzione trovata")
		return
	}

	for _, solution := range solutions {
		if solution.Duration != "" {
			fmt.Fprintln(p.Out, text.Faint.Sprintf("Durata: %s", solution.Duration))
		}

		for i, leg := range solution.Legs {
			train := leg.Number
			if leg.Category != "" {
				train = leg.Category + " " + leg.Number
			}

			fmt.Fprintf(p.Out, "%s–%s (%s)\n",
				leg.Departure.Format("15:04"), leg.Arrival.Format("15:04"), train)

			if i < len(solution.Legs)-1 {
				wait := int(solution.Legs[i+1].Departure.Sub(leg.Arrival).Minutes())
				fmt.Fprintf(p.Out, "Cambio a %s di %d min\n", leg.Destination, wait)
			}
		}

		fmt.Fprintln(p.Out)
	}
}

// Stats renders the national circulation snapshot.
func (p Presenter) Stats(trainsToday int, trainsNow int, at time.Time) {
	fmt.Fprintf(p.Out, "Treni in circolazione da mezzanotte: %d\n", trainsToday)
	fmt.Fprintf(p.Out, "Treni in circolazione adesso: %d\n", trainsNow)
	fmt.Fprintln(p.Out, text.Faint.Sprintf("Ultimo aggiornamento: %s", at.Local().Format("15:04:05")))
}

// delayBadge formats a delay in minutes, red when late and green when
// early. No badge when no delay is known; the provider reports zero both
// for on-time trains and for trains it has not measured yet.
func delayBadge(delay int, hasDelay bool) string {
	if !hasDelay {
		return ""
	}

	badge := fmt.Sprintf("%+d min", delay)
	if delay > 0 {
		return text.FgRed.Sprint(badge)
	}

	return text.FgGreen.Sprint(badge)
}
