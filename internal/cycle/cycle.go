// Package cycle drives a Simulator to a requested generation, detecting
// recurring states so that long runs skip whole periods.
//
// States are identified by a 64-bit xxhash fingerprint of the grid. Two
// distinct grids sharing a fingerprint are treated as equal, so the
// fast-forward result is correct with overwhelming probability rather than
// with certainty.
package cycle

import (
	"fmt"
	"log/slog"

	"cgol-verify/internal/core"
	"cgol-verify/internal/sims/life"

	"github.com/cespare/xxhash/v2"
)

// Stepper produces the generation following g.
type Stepper interface {
	Step(g *core.Grid) core.Grid
}

// Info describes how Advance reached its result.
type Info struct {
	// Iterations is the requested generation count.
	Iterations int
	// Detected reports whether a repeated state was found.
	Detected bool
	// LoopStart is the first generation of the detected cycle.
	LoopStart int
	// LoopLength is the period of the detected cycle.
	LoopLength int
	// DetectedAt is the generation at which the repeat was seen.
	DetectedAt int
	// FastForward is the number of steps applied after detection.
	FastForward int
	// Skipped is the number of generations never simulated.
	Skipped int
	// Steps is the total number of Step calls made.
	Steps int
}

// Fingerprint returns the StateFingerprint of g.
func Fingerprint(g *core.Grid) uint64 {
	return xxhash.Sum64(g.AppendBinary(nil))
}

// Option configures an Advancer.
type Option func(*Advancer)

// WithLogger sets the logger used to report detected cycles.
func WithLogger(l *slog.Logger) Option {
	return func(a *Advancer) {
		if l != nil {
			a.log = l
		}
	}
}

// Advancer runs a Stepper for a number of generations with cycle detection.
type Advancer struct {
	stepper Stepper
	log     *slog.Logger
}

// NewAdvancer returns an Advancer around s.
func NewAdvancer(s Stepper, opts ...Option) *Advancer {
	a := &Advancer{stepper: s, log: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Advance returns the grid at generation iterations of the trajectory
// starting at g0, together with a description of the work done.
func Advance(g0 core.Grid, iterations int, b core.Boundary) (core.Grid, Info) {
	return NewAdvancer(life.New(b, 1)).Advance(g0, iterations)
}

// Advance returns the grid at generation iterations of the trajectory
// starting at g0. Each generation is fingerprinted before it is stepped;
// when a fingerprint recurs the trajectory is periodic from its first
// occurrence, and only the remainder of the outstanding generations modulo
// the period is simulated.
func (a *Advancer) Advance(g0 core.Grid, iterations int) (core.Grid, Info) {
	info := Info{Iterations: iterations}
	cur := g0
	seen := make(map[uint64]int)

	for gen := 0; gen < iterations; gen++ {
		fp := Fingerprint(&cur)
		if start, ok := seen[fp]; ok {
			loop := gen - start
			if loop < 1 {
				panic(fmt.Sprintf("cycle: loop length %d at generation %d", loop, gen))
			}
			remaining := iterations - gen
			ff := remaining % loop

			info.Detected = true
			info.LoopStart = start
			info.LoopLength = loop
			info.DetectedAt = gen
			info.FastForward = ff
			info.Skipped = remaining - ff

			a.log.Info("repeated grid detected",
				"generation", gen,
				"loop_start", start,
				"loop_length", loop,
				"skipped", info.Skipped)

			for i := 0; i < ff; i++ {
				cur = a.stepper.Step(&cur)
				info.Steps++
			}
			return cur, info
		}
		seen[fp] = gen
		cur = a.stepper.Step(&cur)
		info.Steps++
	}
	return cur, info
}
