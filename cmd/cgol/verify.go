package main

import (
	"errors"
	"fmt"

	"cgol-verify/internal/check"
	"cgol-verify/internal/config"
	"cgol-verify/internal/metrics"
	"cgol-verify/internal/render"

	"github.com/spf13/cobra"
)

func newVerifyCmd(configPath *string) *cobra.Command {
	cfg := config.NewConfig()
	var show, plain bool
	cmd := &cobra.Command{
		Use:   "verify [pattern]",
		Short: "Check a device memory image against the reference grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := setup(cmd, cfg, *configPath, args)
			if err != nil {
				return err
			}
			if cfg.Memory.Image == "" {
				return errors.New("verify needs --image")
			}
			rec := metrics.New()
			rep, err := check.NewRunner(check.WithLogger(log), check.WithMetrics(rec)).CheckImage(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			term := render.NewTerminal(colorOutput(out, plain))
			fmt.Fprint(out, term.Parameters(rep.Parameters()))
			if show {
				fmt.Fprintln(out, "expected:")
				fmt.Fprint(out, term.Grid(&rep.Final))
				fmt.Fprintln(out, "generated:")
				fmt.Fprint(out, term.Grid(rep.Device))
			}
			fmt.Fprintln(out, term.Verdict(*rep.Verdict))
			if cfg.Diagnostic {
				for _, c := range rep.Verdict.Divergent() {
					fmt.Fprintf(out, "  %s expected %d got %d\n", c,
						rep.Final.Cell(c.Row, c.Col), rep.Device.Cell(c.Row, c.Col))
				}
			}

			if cfg.PNGDir != "" {
				if err := render.SaveComparison(cfg.PNGDir, &rep.Final, rep.Device); err != nil {
					return err
				}
			}
			if cfg.Metrics != "" {
				if err := rec.WriteTextfile(cfg.Metrics); err != nil {
					return err
				}
			}
			if !rep.Verdict.Matched() {
				return errMismatch
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().BoolVar(&show, "show", false, "print the expected and generated grids")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colour output")
	return cmd
}
