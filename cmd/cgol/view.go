//go:build ebiten

package main

import (
	"errors"

	"cgol-verify/internal/app"
	"cgol-verify/internal/check"
	"cgol-verify/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newViewCmd(configPath *string) *cobra.Command {
	cfg := config.NewConfig()
	cmd := &cobra.Command{
		Use:   "view [pattern]",
		Short: "Animate a pattern in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := setup(cmd, cfg, *configPath, args)
			if err != nil {
				return err
			}
			runner := check.NewRunner(check.WithLogger(log))
			var rep *check.Report
			if cfg.Memory.Image != "" {
				rep, err = runner.CheckImage(cfg)
			} else {
				rep, err = runner.Simulate(cfg)
			}
			if err != nil {
				return err
			}

			game := app.New(rep.Initial, app.Options{
				Title:      rep.Pattern,
				Boundary:   rep.Boundary,
				Workers:    cfg.Workers,
				Iterations: cfg.Iterations,
				Scale:      cfg.View.Scale,
				FPS:        cfg.View.FPS,
				Verdict:    rep.Verdict,
				Snapshot:   rep.Parameters(),
			})
			ebiten.SetWindowTitle("cgol: " + rep.Pattern)
			ebiten.SetWindowSize(game.WindowSize())
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
