//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newViewCmd(*string) *cobra.Command {
	return &cobra.Command{
		Use:   "view [pattern]",
		Short: "Animate a pattern in a window (requires the ebiten build tag)",
		RunE: func(*cobra.Command, []string) error {
			return errors.New("view requires building with `-tags ebiten`")
		},
	}
}
