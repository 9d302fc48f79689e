// Package metrics records per-run counters in a private Prometheus registry
// and exports them in the text exposition format.
package metrics

import (
	"cgol-verify/internal/cycle"
	"cgol-verify/internal/memimage"
	"cgol-verify/internal/verify"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cgol"

// Recorder holds the metrics of a run.
type Recorder struct {
	reg *prometheus.Registry

	simulated  prometheus.Counter
	skipped    prometheus.Counter
	loopLength prometheus.Gauge
	wordReads  prometheus.Counter
	bytesRead  prometheus.Counter
	matched    *prometheus.GaugeVec
	divergent  prometheus.Gauge
}

// New returns a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		simulated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_simulated_total",
			Help:      "Generations computed by the simulator.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_skipped_total",
			Help:      "Generations skipped by cycle fast-forward.",
		}),
		loopLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cycle_length",
			Help:      "Period of the detected cycle, 0 when none was found.",
		}),
		wordReads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memory_word_reads_total",
			Help:      "Word reads issued against device memory.",
		}),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memory_bytes_decoded_total",
			Help:      "Bytes of device memory decoded into grid cells.",
		}),
		matched: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "verification_matched",
			Help:      "1 when the device grid matched the reference, 0 otherwise.",
		}, []string{"pattern", "boundary"}),
		divergent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "divergent_cells",
			Help:      "Divergent cells reported by the verifier.",
		}),
	}
	r.reg.MustRegister(r.simulated, r.skipped, r.loopLength, r.wordReads, r.bytesRead, r.matched, r.divergent)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveAdvance records the work done by a cycle.Advance call.
func (r *Recorder) ObserveAdvance(info cycle.Info) {
	r.simulated.Add(float64(info.Steps))
	r.skipped.Add(float64(info.Skipped))
	r.loopLength.Set(float64(info.LoopLength))
}

// ObserveDecode records the memory traffic of a decode.
func (r *Recorder) ObserveDecode(st memimage.Stats) {
	r.wordReads.Add(float64(st.WordReads))
	r.bytesRead.Add(float64(st.Bytes))
}

// ObserveVerdict records the outcome of a verification.
func (r *Recorder) ObserveVerdict(v verify.Verdict) {
	val := 0.0
	if v.Matched() {
		val = 1
	}
	r.matched.WithLabelValues(v.Pattern, v.Boundary.String()).Set(val)
	r.divergent.Set(float64(len(v.Divergent())))
}

// WriteTextfile writes every metric to path, replacing it atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
