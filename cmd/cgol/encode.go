package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cgol-verify/internal/config"
	"cgol-verify/internal/memimage"
	"cgol-verify/internal/pattern"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	dir := config.NewConfig().PatternDir
	var outDir string
	cmd := &cobra.Command{
		Use:   "encode <pattern>",
		Short: "Write a pattern as a hex memory image and conf file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pattern.Resolve(dir, args[0])
			g, err := pattern.Load(path)
			if err != nil {
				return err
			}
			name := pattern.Name(path)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			hexPath := filepath.Join(outDir, name+".hex")
			if err := writeFile(hexPath, func(f *os.File) error {
				return memimage.WriteHex(f, memimage.Encode(&g), g.Rows())
			}); err != nil {
				return err
			}
			confPath := filepath.Join(outDir, name+".conf")
			if err := writeFile(confPath, func(f *os.File) error {
				return memimage.WriteConf(f, memimage.Conf{Name: name, Rows: g.Rows(), Cols: g.Cols()})
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d -> %s, %s\n", name, g.Rows(), g.Cols(), hexPath, confPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "pattern-dir", dir, "directory searched for bare pattern names")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
