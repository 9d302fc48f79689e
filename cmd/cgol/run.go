package main

import (
	"fmt"
	"path/filepath"

	"cgol-verify/internal/check"
	"cgol-verify/internal/config"
	"cgol-verify/internal/metrics"
	"cgol-verify/internal/render"

	"github.com/spf13/cobra"
)

func newRunCmd(configPath *string) *cobra.Command {
	cfg := config.NewConfig()
	var show, plain bool
	cmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "Simulate a pattern and report the final generation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := setup(cmd, cfg, *configPath, args)
			if err != nil {
				return err
			}
			rec := metrics.New()
			rep, err := check.NewRunner(check.WithLogger(log), check.WithMetrics(rec)).Simulate(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			term := render.NewTerminal(colorOutput(out, plain))
			fmt.Fprint(out, term.Parameters(rep.Parameters()))
			if show {
				fmt.Fprint(out, term.Grid(&rep.Final))
			}
			if cfg.PNGDir != "" {
				if err := render.SavePNG(filepath.Join(cfg.PNGDir, "expected_grid.png"), &rep.Final); err != nil {
					return err
				}
			}
			if cfg.Metrics != "" {
				return rec.WriteTextfile(cfg.Metrics)
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().BoolVar(&show, "show", false, "print the final grid")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colour output")
	return cmd
}
