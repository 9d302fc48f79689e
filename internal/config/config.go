// Package config holds the run configuration shared by the cgol commands.
// Values come from defaults, an optional YAML file and command-line flags,
// in increasing order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cgol-verify/internal/core"
	"cgol-verify/internal/memimage"
	"cgol-verify/internal/pattern"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvPatternDir names the environment variable holding the default pattern
// directory.
const EnvPatternDir = "CGOL_PATTERNS"

// Config represents the parameters of a run.
type Config struct {
	Pattern    string `yaml:"pattern" validate:"required"`
	PatternDir string `yaml:"pattern_dir"`
	Iterations int    `yaml:"iterations" validate:"gte=0"`
	Boundary   string `yaml:"boundary" validate:"oneof=bounded toroidal torus wrap"`
	Workers    int    `yaml:"workers" validate:"gte=1,lte=256"`
	Diagnostic bool   `yaml:"diagnostic"`
	DumpPath   string `yaml:"dump"`
	PNGDir     string `yaml:"png_dir"`
	Metrics    string `yaml:"metrics"`
	LogLevel   string `yaml:"log_level" validate:"oneof=debug info warn error"`

	Memory Memory `yaml:"memory"`
	View   View   `yaml:"view"`
}

// Memory locates the device memory image to verify against.
type Memory struct {
	Image      string `yaml:"image"`
	Conf       string `yaml:"conf"`
	Base       uint32 `yaml:"base"`
	XSpaceBase uint32 `yaml:"xspace_base"`
}

// View configures the interactive viewer.
type View struct {
	Scale int `yaml:"scale" validate:"gte=0,lte=64"`
	FPS   int `yaml:"fps" validate:"gte=1,lte=240"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	dir := os.Getenv(EnvPatternDir)
	if dir == "" {
		dir = "patterns"
	}
	return &Config{
		PatternDir: dir,
		Boundary:   core.Bounded.String(),
		Workers:    1,
		LogLevel:   "info",
		Memory:     Memory{XSpaceBase: memimage.DefaultXSpaceBase},
		View:       View{FPS: 10},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.PatternDir, "pattern-dir", c.PatternDir, "directory searched for bare pattern names")
	fs.IntVarP(&c.Iterations, "itr", "n", c.Iterations, "number of generations")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary mode: bounded or toroidal")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation")
	fs.BoolVar(&c.Diagnostic, "diagnostic", c.Diagnostic, "report every divergent cell instead of the first")
	fs.StringVar(&c.DumpPath, "dump", c.DumpPath, "write the final reference grid to this file")
	fs.StringVar(&c.PNGDir, "png-dir", c.PNGDir, "write expected/generated grid images to this directory")
	fs.StringVar(&c.Metrics, "metrics", c.Metrics, "write Prometheus metrics to this textfile")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.Memory.Image, "image", c.Memory.Image, "hex memory image produced by the device")
	fs.StringVar(&c.Memory.Conf, "conf", c.Memory.Conf, "conf file giving the image dimensions")
	fs.Uint32Var(&c.Memory.Base, "base", c.Memory.Base, "base address of the grid in device memory")
	fs.Uint32Var(&c.Memory.XSpaceBase, "xspace-base", c.Memory.XSpaceBase, "first address of external memory")
	fs.IntVar(&c.View.Scale, "scale", c.View.Scale, "pixels per cell in the viewer (0 fits 640 pixels)")
	fs.IntVar(&c.View.FPS, "fps", c.View.FPS, "generations per second in the viewer")
	fs.Var(wrapValue{c}, "wrap", "shorthand for --boundary=toroidal")
	fs.Lookup("wrap").NoOptDefVal = "true"
}

// wrapValue is a boolean flag view over Config.Boundary.
type wrapValue struct{ c *Config }

func (w wrapValue) String() string {
	if w.c == nil {
		return "false"
	}
	b, _ := core.ParseBoundary(w.c.Boundary)
	return fmt.Sprint(b == core.Toroidal)
}

func (w wrapValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "true", "1":
		w.c.Boundary = core.Toroidal.String()
	case "false", "0":
		w.c.Boundary = core.Bounded.String()
	default:
		return fmt.Errorf("invalid wrap value %q", s)
	}
	return nil
}

func (w wrapValue) Type() string { return "bool" }

// Load reads the YAML file at path into c. Flags already set on fs keep
// their command-line values.
func (c *Config) Load(path string, fs *pflag.FlagSet) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	changed := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
	}

	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	for name, val := range changed {
		if err := fs.Set(name, val); err != nil {
			return fmt.Errorf("reapply --%s: %w", name, err)
		}
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// BoundaryMode returns the parsed boundary.
func (c *Config) BoundaryMode() core.Boundary {
	b, _ := core.ParseBoundary(c.Boundary)
	return b
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// PatternPath resolves Pattern against PatternDir.
func (c *Config) PatternPath() string {
	return pattern.Resolve(c.PatternDir, c.Pattern)
}
