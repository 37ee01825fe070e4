package board

import (
	"errors"
	"fmt"
	"time"

	"github.com/binario/binario/pkg/config"
	"github.com/binario/binario/pkg/prompt"
	"github.com/binario/binario/pkg/render"
	"github.com/binario/binario/pkg/stations"
	"github.com/binario/binario/pkg/stats"
	"github.com/binario/binario/pkg/util"
	"github.com/binario/binario/pkg/viaggiatreno"
	"github.com/urfave/cli/v2"
)

// DeparturesCLI returns the departures command.
func DeparturesCLI(cfg *config.Config, client *viaggiatreno.Client, presenter render.Presenter) *cli.Command {
	return &cli.Command{
		Name:      "departures",
		Aliases:   []string{"d"},
		Usage:     "Show the live departure board of a station",
		ArgsUsage: "[STATION]",
		Flags: []cli.Flag{
			timeFlag(),
		},
		Action: func(c *cli.Context) error {
			at, err := util.ParseWhen(c.String("time"), time.Now())
			if err != nil {
				return err
			}

			stats.Banner(c, cfg, client, presenter)

			station, err := resolve(c, client)
			if err != nil {
				if errors.Is(err, stations.ErrStationNotFound) {
					fmt.Fprintln(presenter.Out, "Nessuna stazione trovata")
					return nil
				}
				return err
			}

			aggregator := &Aggregator{Source: APISource{Client: client}}

			departureBoard, err := aggregator.Assemble(c.Context, station, at)
			if err != nil {
				return err
			}

			rows := make([]render.DepartureRow, len(departureBoard.Rows))
			for i, row := range departureBoard.Rows {
				rows[i] = render.DepartureRow{
					Train:       row.Label,
					Destination: row.Destination,
					Departure:   row.DepartureTime,
					Platform:    row.Platform,
					Delay:       row.Delay,
					HasDelay:    row.HasDelay,
				}
			}

			presenter.Departures(displayName(station), rows)

			return nil
		},
	}
}

// ArrivalsCLI returns the arrivals command.
func ArrivalsCLI(cfg *config.Config, client *viaggiatreno.Client, presenter render.Presenter) *cli.Command {
	return &cli.Command{
		Name:      "arrivals",
		Aliases:   []string{"a"},
		Usage:     "Show the arrival board of a station",
		ArgsUsage: "[STATION]",
		Flags: []cli.Flag{
			timeFlag(),
		},
		Action: func(c *cli.Context) error {
			at, err := util.ParseWhen(c.String("time"), time.Now())
			if err != nil {
				return err
			}

			stats.Banner(c, cfg, client, presenter)

			station, err := resolve(c, client)
			if err != nil {
				if errors.Is(err, stations.ErrStationNotFound) {
					fmt.Fprintln(presenter.Out, "Nessuna stazione trovata")
					return nil
				}
				return err
			}

			aggregator := &Aggregator{Source: APISource{Client: client}}

			arrivalBoard, err := aggregator.Arrivals(c.Context, station, at)
			if err != nil {
				return err
			}

			rows := make([]render.ArrivalRow, len(arrivalBoard.Rows))
			for i, row := range arrivalBoard.Rows {
				train := row.Number
				if row.Category != "" {
					train = row.Category + " " + row.Number
				}

				rows[i] = render.ArrivalRow{
					Train:   train,
					Origin:  row.Origin,
					Arrival: row.ArrivalTime,
				}
			}

			presenter.Arrivals(displayName(station), rows)

			return nil
		},
	}
}

func resolve(c *cli.Context, client *viaggiatreno.Client) (stations.Station, error) {
	resolver := &stations.Resolver{
		Search: stations.APISearcher{Client: client},
		Prompt: prompt.Survey{},
	}

	return resolver.Resolve(c.Context, c.Args().First(), "")
}

func displayName(station stations.Station) string {
	if station.Name != "" {
		return station.Name
	}

	return station.ID
}

func timeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "time",
		Aliases: []string{"t"},
		Usage:   "board time: HH:MM, a full datetime, or a unix timestamp (defaults to now)",
	}
}
