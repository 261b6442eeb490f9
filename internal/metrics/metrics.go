package metrics

import (
	"sync/atomic"
	"time"
)

// MetricID indexes one counter or histogram in the dense metric space.
type MetricID int

const (
	MetricSignInSuccess MetricID = iota
	MetricSignInFailure
	MetricSignInNetworkError
	MetricSignInStoreFailure
	MetricSessionRestored
	MetricSessionRestoreEmpty
	MetricSessionCorruptDiscarded
	MetricSessionExpiredDiscarded
	MetricSessionRefreshSuccess
	MetricSessionRefreshFailure
	MetricSignOut
	MetricSignOutServerError
	MetricStaleResultDropped
	MetricGuardAuthorized
	MetricGuardRedirected
	MetricSignInLatency

	MetricIDCount
)

// HistogramBuckets is the fixed bucket count for every latency histogram.
const HistogramBuckets = 8

// histogramBounds are upper bounds in seconds for each non-overflow bucket.
// The final bucket is +Inf.
var histogramBounds = [HistogramBuckets - 1]float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1,
}

// Config controls which recording paths are live.
type Config struct {
	Enabled       bool
	EnableLatency bool
}

// Metrics holds atomic counters and optional latency histograms. The zero
// value is unusable; construct through New. A nil *Metrics is a valid no-op
// recorder.
type Metrics struct {
	cfg        Config
	counters   [MetricIDCount]atomic.Uint64
	histograms [MetricIDCount][HistogramBuckets]atomic.Uint64
}

// Snapshot is a point-in-time deep copy of all metrics.
type Snapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

func New(cfg Config) *Metrics {
	if !cfg.Enabled {
		return nil
	}
	return &Metrics{cfg: cfg}
}

// Inc adds one to the counter. No-op on a nil receiver or out-of-range ID.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id < 0 || id >= MetricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Value reads one counter. Zero on a nil receiver or out-of-range ID.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id < 0 || id >= MetricIDCount {
		return 0
	}
	return m.counters[id].Load()
}

// RecordLatency files d into the histogram bucket for id.
func (m *Metrics) RecordLatency(id MetricID, d time.Duration) {
	if m == nil || !m.cfg.EnableLatency || id < 0 || id >= MetricIDCount {
		return
	}

	seconds := d.Seconds()
	bucket := HistogramBuckets - 1
	for i, bound := range histogramBounds {
		if seconds <= bound {
			bucket = i
			break
		}
	}
	m.histograms[id][bucket].Add(1)
}

// Snapshot deep-copies the current state. Only non-zero series appear in the
// maps; exporters fill in zeros from their own definitions.
func (m *Metrics) Snapshot() Snapshot {
	out := Snapshot{
		Counters:   make(map[MetricID]uint64, MetricIDCount),
		Histograms: make(map[MetricID][]uint64),
	}
	if m == nil {
		return out
	}

	for id := MetricID(0); id < MetricIDCount; id++ {
		if v := m.counters[id].Load(); v > 0 {
			out.Counters[id] = v
		}

		var buckets []uint64
		for b := 0; b < HistogramBuckets; b++ {
			if v := m.histograms[id][b].Load(); v > 0 {
				if buckets == nil {
					buckets = make([]uint64, HistogramBuckets)
				}
				buckets[b] = v
			}
		}
		if buckets != nil {
			out.Histograms[id] = buckets
		}
	}

	return out
}
