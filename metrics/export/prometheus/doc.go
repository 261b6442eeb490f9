// Package prometheus provides Prometheus rendering for the client auth core's
// metrics.
//
// [NewPrometheusExporter] accepts a [schoolway.Client] and exposes an [http.Handler]
// that renders all counters and histograms in Prometheus text exposition format.
// Counter names are prefixed schoolway_*_total; the single histogram is
// schoolway_signin_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate client state.
package prometheus
