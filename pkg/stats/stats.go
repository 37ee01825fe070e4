// Package stats reports the provider's national circulation snapshot.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/binario/binario/pkg/config"
	"github.com/binario/binario/pkg/render"
	"github.com/binario/binario/pkg/viaggiatreno"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// Show fetches the snapshot as of now and renders it. It doubles as the
// banner printed before the board commands.
func Show(ctx context.Context, client *viaggiatreno.Client, presenter render.Presenter, now time.Time) error {
	snapshot, err := client.Statistiche(ctx, now)
	if err != nil {
		return fmt.Errorf("fetching circulation stats: %w", err)
	}

	presenter.Stats(snapshot.TreniGiorno, snapshot.TreniCircolanti, now)

	return nil
}

// Banner prints the snapshot before a board command, when enabled by
// configuration and not suppressed with --no-stats. A failing banner is
// reported but never blocks the board itself.
func Banner(c *cli.Context, cfg *config.Config, client *viaggiatreno.Client, presenter render.Presenter) {
	if !cfg.ShowStats || c.Bool("no-stats") {
		return
	}

	if err := Show(c.Context, client, presenter, time.Now().UTC()); err != nil {
		log.Warn().Err(err).Msg("Skipping circulation stats")
	}
}

// RegisterCLI returns the stats command.
func RegisterCLI(client *viaggiatreno.Client, presenter render.Presenter) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show national train circulation statistics",
		Action: func(c *cli.Context) error {
			return Show(c.Context, client, presenter, time.Now().UTC())
		},
	}
}
