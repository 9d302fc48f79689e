// Package check wires the reference pipeline together: load a pattern,
// advance it to the requested generation, optionally dump it, and compare it
// with a grid decoded from device memory.
package check

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"cgol-verify/internal/config"
	"cgol-verify/internal/core"
	"cgol-verify/internal/cycle"
	"cgol-verify/internal/memimage"
	"cgol-verify/internal/metrics"
	"cgol-verify/internal/pattern"
	"cgol-verify/internal/sims/life"
	"cgol-verify/internal/verify"

	"github.com/google/uuid"
)

// Report collects everything a run produced.
type Report struct {
	RunID    string
	Pattern  string
	Boundary core.Boundary
	Initial  core.Grid
	Final    core.Grid
	Advance  cycle.Info
	Elapsed  time.Duration
	DumpPath string

	// Set only when a device image was checked.
	Device  *core.Grid
	Decode  *memimage.Stats
	Verdict *verify.Verdict
}

// Parameters summarises the report for presentation layers.
func (r *Report) Parameters() core.ParameterSnapshot {
	run := core.ParameterGroup{Name: "Run", Params: []core.Parameter{
		{Key: "pattern", Label: "Pattern", Value: r.Pattern},
		{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", r.Initial.Rows(), r.Initial.Cols())},
		{Key: "boundary", Label: "Boundary", Value: r.Boundary.String()},
		{Key: "generations", Label: "Generations", Value: strconv.Itoa(r.Advance.Iterations)},
		{Key: "population", Label: "Final population", Value: strconv.Itoa(r.Final.Population())},
	}}
	cyc := core.ParameterGroup{Name: "Cycle"}
	if r.Advance.Detected {
		cyc.Params = []core.Parameter{
			{Key: "loop_start", Label: "Loop start", Value: strconv.Itoa(r.Advance.LoopStart)},
			{Key: "loop_length", Label: "Loop length", Value: strconv.Itoa(r.Advance.LoopLength)},
			{Key: "skipped", Label: "Skipped", Value: strconv.Itoa(r.Advance.Skipped)},
		}
	} else {
		cyc.Params = []core.Parameter{{Key: "loop_length", Label: "Loop length", Value: "none"}}
	}
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{run, cyc}}
	if r.Decode != nil {
		snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Memory", Params: []core.Parameter{
			{Key: "word_reads", Label: "Word reads", Value: strconv.Itoa(r.Decode.WordReads)},
			{Key: "bytes", Label: "Bytes", Value: strconv.Itoa(r.Decode.Bytes)},
		}})
	}
	return snap
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics records run metrics in rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(r *Runner) { r.rec = rec }
}

// Runner executes runs described by a config.Config.
type Runner struct {
	log *slog.Logger
	rec *metrics.Recorder
}

// NewRunner returns a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Simulate loads the configured pattern, advances it cfg.Iterations
// generations and dumps the result when cfg.DumpPath is set.
func (r *Runner) Simulate(cfg *config.Config) (*Report, error) {
	path := cfg.PatternPath()
	g0, err := pattern.Load(path)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:    uuid.NewString(),
		Pattern:  pattern.Name(path),
		Boundary: cfg.BoundaryMode(),
		Initial:  g0,
	}
	log := r.log.With("run_id", rep.RunID, "pattern", rep.Pattern)
	log.Info("pattern loaded", "rows", g0.Rows(), "cols", g0.Cols(), "population", g0.Population())

	start := time.Now()
	adv := cycle.NewAdvancer(life.New(rep.Boundary, cfg.Workers), cycle.WithLogger(log))
	rep.Final, rep.Advance = adv.Advance(g0, cfg.Iterations)
	rep.Elapsed = time.Since(start)
	log.Info("generations done",
		"iterations", cfg.Iterations,
		"boundary", rep.Boundary.String(),
		"steps", rep.Advance.Steps,
		"elapsed", rep.Elapsed)
	if r.rec != nil {
		r.rec.ObserveAdvance(rep.Advance)
	}

	if cfg.DumpPath != "" {
		if err := pattern.WriteFile(cfg.DumpPath, &rep.Final); err != nil {
			return nil, err
		}
		rep.DumpPath = cfg.DumpPath
		log.Info("post last generation grid dumped", "path", cfg.DumpPath)
	}
	return rep, nil
}

// Check simulates as Simulate does and then verifies the result against the
// grid decoded from mem at cfg.Memory.Base. The region is derived from the
// base address.
func (r *Runner) Check(cfg *config.Config, mem memimage.WordReader) (*Report, error) {
	rep, err := r.Simulate(cfg)
	if err != nil {
		return nil, err
	}
	return r.verify(cfg, rep, mem)
}

// CheckImage is Check against the hex image file named by cfg.Memory.Image.
func (r *Runner) CheckImage(cfg *config.Config) (*Report, error) {
	rep, err := r.Simulate(cfg)
	if err != nil {
		return nil, err
	}
	img, err := OpenImage(cfg, rep.Final.Size())
	if err != nil {
		return nil, err
	}
	return r.verify(cfg, rep, img)
}

func (r *Runner) verify(cfg *config.Config, rep *Report, mem memimage.WordReader) (*Report, error) {
	log := r.log.With("run_id", rep.RunID, "pattern", rep.Pattern)

	region := memimage.RegionFor(cfg.Memory.Base, cfg.Memory.XSpaceBase)
	device, st, err := memimage.Decode(mem, region, cfg.Memory.Base, rep.Final.Rows(), rep.Final.Cols())
	if r.rec != nil {
		r.rec.ObserveDecode(st)
	}
	if err != nil {
		return nil, fmt.Errorf("decode device grid: %w", err)
	}
	rep.Device = &device
	rep.Decode = &st
	log.Debug("device grid decoded", "region", region.String(), "base", fmt.Sprintf("%#08x", cfg.Memory.Base),
		"word_reads", st.WordReads)

	compare := verify.Verify
	if cfg.Diagnostic {
		compare = verify.VerifyAll
	}
	res, err := compare(&rep.Final, &device)
	if err != nil {
		return nil, err
	}
	rep.Verdict = &verify.Verdict{
		Result:      res,
		Pattern:     rep.Pattern,
		Generations: cfg.Iterations,
		Boundary:    rep.Boundary,
	}
	if r.rec != nil {
		r.rec.ObserveVerdict(*rep.Verdict)
	}
	if res.Matched() {
		log.Info("final grid matches expected")
	} else {
		cell, _ := res.First()
		log.Error("final grid does not match expected", "first_divergence", cell.String(),
			"divergent", len(res.Divergent()))
	}
	return rep, nil
}

// OpenImage maps the configured hex image file as device memory. When a conf
// file is configured its dimensions must agree with want.
func OpenImage(cfg *config.Config, want core.Size) (*memimage.Image, error) {
	if cfg.Memory.Conf != "" {
		f, err := os.Open(cfg.Memory.Conf)
		if err != nil {
			return nil, fmt.Errorf("open conf: %w", err)
		}
		conf, err := memimage.ReadConf(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		if conf.Rows != want.H || conf.Cols != want.W {
			return nil, fmt.Errorf("%w: conf %dx%d, pattern %dx%d", core.ErrShapeMismatch,
				conf.Rows, conf.Cols, want.H, want.W)
		}
	}
	region := memimage.RegionFor(cfg.Memory.Base, cfg.Memory.XSpaceBase)
	return memimage.LoadHexImage(cfg.Memory.Image, region, cfg.Memory.Base)
}
