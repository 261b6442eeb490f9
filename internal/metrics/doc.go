// Package metrics implements the lock-free counter and latency histogram
// backing store for the client core.
//
// Counters are plain atomic adds indexed by a dense MetricID space;
// histograms are fixed eight-bucket latency distributions. Snapshot produces
// a deep copy so exporters never observe torn state.
//
// # What this package must NOT do
//
//   - Export metric names or help text (that lives in metrics/export/internaldefs).
//   - Allocate on the Inc hot path.
package metrics
