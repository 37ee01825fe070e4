package main

import (
	"os"
	"time"

	"github.com/binario/binario/pkg/board"
	"github.com/binario/binario/pkg/config"
	"github.com/binario/binario/pkg/render"
	"github.com/binario/binario/pkg/solutions"
	"github.com/binario/binario/pkg/stats"
	"github.com/binario/binario/pkg/viaggiatreno"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("BINARIO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("BINARIO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := viaggiatreno.NewClient(cfg.ProviderURL, cfg.UserAgent, cfg.Timeout())
	presenter := render.Presenter{Out: os.Stdout}

	app := &cli.App{
		Name:        "binario",
		Usage:       "Realtime information about trains in Italy",
		Description: "Departure and arrival boards, journey solutions and national circulation statistics, straight from ViaggiaTreno.",

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-stats",
				Usage: "don't show circulation statistics before a board",
			},
		},

		Commands: []*cli.Command{
			board.DeparturesCLI(cfg, client, presenter),
			board.ArrivalsCLI(cfg, client, presenter),
			solutions.RegisterCLI(cfg, client, presenter),
			stats.RegisterCLI(client, presenter),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
