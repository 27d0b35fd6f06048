package debugserver

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seethruhead/unraid-binpack/plan"
)

// Metrics holds the Prometheus gauges a debug run exposes at /metrics,
// grounded on a sibling retrieved repo's registered-gauge-struct pattern
// (cmd/server/prometheus.go).
type Metrics struct {
	movedFiles  prometheus.Gauge
	movedBytes  prometheus.Gauge
	failedFiles prometheus.Gauge
	totalFiles  prometheus.Gauge
	lastStep    prometheus.Gauge
}

func newMetrics() *Metrics {
	m := &Metrics{
		movedFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unraid_binpack_moved_files",
			Help: "Files moved so far in the current plan run.",
		}),
		movedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unraid_binpack_moved_bytes",
			Help: "Bytes moved so far in the current plan run.",
		}),
		failedFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unraid_binpack_failed_files",
			Help: "Files the packer could not place on any destination disk.",
		}),
		totalFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unraid_binpack_total_files",
			Help: "Total files considered by the current plan run.",
		}),
		lastStep: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unraid_binpack_last_step",
			Help: "Sequence number of the most recently emitted snapshot.",
		}),
	}
	prometheus.MustRegister(
		m.movedFiles,
		m.movedBytes,
		m.failedFiles,
		m.totalFiles,
		m.lastStep,
	)
	return m
}

// observeSnapshot infers move/fail events from a Snapshot's free-form
// Action string (set by plan.PackTightly's notify closure: "✓ rel ->
// dest" for a placed file, "Can't move rel" for one that didn't fit).
func (m *Metrics) observeSnapshot(snap plan.Snapshot) {
	m.lastStep.Set(float64(snap.Step))
	if snap.Meta.TotalFiles > 0 {
		m.totalFiles.Set(float64(snap.Meta.TotalFiles))
	}
	switch {
	case strings.HasPrefix(snap.Action, "✓ "):
		m.movedFiles.Add(1)
		m.movedBytes.Add(snap.Meta.FileSizeMB * 1024 * 1024)
	case strings.HasPrefix(snap.Action, "Can't move"):
		m.failedFiles.Add(1)
	}
}
