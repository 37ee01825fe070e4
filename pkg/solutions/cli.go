package solutions

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

// RegisterCLI returns the solutions command.
func RegisterCLI(cfg *config.Config, client *viaggiatreno.Client, presenter render.Presenter) *cli.Command {
	return &cli.Command{
		Name:      "solutions",
		Aliases:   []string{"s"},
		Usage:     "Show journey solutions between two stations",
		ArgsUsage: "DEPARTURE ARRIVAL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "departure time: HH:MM, a full datetime, or a unix timestamp (defaults to now)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("solutions needs a departure and an arrival station")
			}

			at, err := util.ParseWhen(c.String("time"), time.Now())
			if err != nil {
				return err
			}
			if at.IsZero() {
				at = time.Now().UTC()
			}

			stats.Banner(c, cfg, client, presenter)

			resolver := &stations.Resolver{
				Search: stations.APISearcher{Client: client},
				Prompt: prompt.Survey{},
			}

			origin, err := resolver.Resolve(c.Context, c.Args().Get(0), "")
			if err != nil {
				if errors.Is(err, stations.ErrStationNotFound) {
					fmt.Fprintln(presenter.Out, "Nessuna stazione trovata")
					return nil
				}
				return err
			}

			destination, err := resolver.Resolve(c.Context, c.Args().Get(1), "")
			if err != nil {
				if errors.Is(err, stations.ErrStationNotFound) {
					fmt.Fprintln(presenter.Out, "Nessuna stazione trovata")
					return nil
				}
				return err
			}

			journeySolutions, err := Fetch(c.Context, client, origin, destination, at)
			if err != nil {
				return err
			}

			presenter.Solutions(origin.Name, destination.Name, journeySolutions)

			return nil
		},
	}
}
