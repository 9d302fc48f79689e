// Command cgol simulates Game of Life patterns and checks device memory
// images against the software reference.
package main

import (
	"errors"
	"io"
	"log"
	"log/slog"
	"os"

	"cgol-verify/internal/config"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// errMismatch reports a completed verification whose verdict is FAIL.
var errMismatch = errors.New("device grid does not match reference")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errMismatch) {
			os.Exit(1)
		}
		log.Fatalf("cgol: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "cgol",
		Short:         "Game of Life reference engine and memory image verifier",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	root.AddCommand(
		newRunCmd(&configPath),
		newVerifyCmd(&configPath),
		newEncodeCmd(),
		newGenCmd(),
		newViewCmd(&configPath),
	)
	return root
}

// setup finalises cfg for cmd: it applies the config file, takes the pattern
// from args, validates, and returns a logger at the configured level.
func setup(cmd *cobra.Command, cfg *config.Config, configPath string, args []string) (*slog.Logger, error) {
	if configPath != "" {
		if err := cfg.Load(configPath, cmd.Flags()); err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		cfg.Pattern = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()})
	return slog.New(h), nil
}

// colorOutput reports whether w is a terminal that can take ANSI styling.
func colorOutput(w io.Writer, plain bool) bool {
	if plain {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
