package schoolway

import (
	internalmetrics "github.com/AyangaWethmini/schoolway-go/internal/metrics"
)

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricSignInSuccess is an exported constant or variable used by the client auth core.
	MetricSignInSuccess = MetricID(internalmetrics.MetricSignInSuccess)
	// MetricSignInFailure is an exported constant or variable used by the client auth core.
	MetricSignInFailure = MetricID(internalmetrics.MetricSignInFailure)
	// MetricSignInNetworkError is an exported constant or variable used by the client auth core.
	MetricSignInNetworkError = MetricID(internalmetrics.MetricSignInNetworkError)
	// MetricSignInStoreFailure is an exported constant or variable used by the client auth core.
	MetricSignInStoreFailure = MetricID(internalmetrics.MetricSignInStoreFailure)
	// MetricSessionRestored is an exported constant or variable used by the client auth core.
	MetricSessionRestored = MetricID(internalmetrics.MetricSessionRestored)
	// MetricSessionRestoreEmpty is an exported constant or variable used by the client auth core.
	MetricSessionRestoreEmpty = MetricID(internalmetrics.MetricSessionRestoreEmpty)
	// MetricSessionCorruptDiscarded is an exported constant or variable used by the client auth core.
	MetricSessionCorruptDiscarded = MetricID(internalmetrics.MetricSessionCorruptDiscarded)
	// MetricSessionExpiredDiscarded is an exported constant or variable used by the client auth core.
	MetricSessionExpiredDiscarded = MetricID(internalmetrics.MetricSessionExpiredDiscarded)
	// MetricSessionRefreshSuccess is an exported constant or variable used by the client auth core.
	MetricSessionRefreshSuccess = MetricID(internalmetrics.MetricSessionRefreshSuccess)
	// MetricSessionRefreshFailure is an exported constant or variable used by the client auth core.
	MetricSessionRefreshFailure = MetricID(internalmetrics.MetricSessionRefreshFailure)
	// MetricSignOut is an exported constant or variable used by the client auth core.
	MetricSignOut = MetricID(internalmetrics.MetricSignOut)
	// MetricSignOutServerError is an exported constant or variable used by the client auth core.
	MetricSignOutServerError = MetricID(internalmetrics.MetricSignOutServerError)
	// MetricStaleResultDropped is an exported constant or variable used by the client auth core.
	MetricStaleResultDropped = MetricID(internalmetrics.MetricStaleResultDropped)
	// MetricGuardAuthorized is an exported constant or variable used by the client auth core.
	MetricGuardAuthorized = MetricID(internalmetrics.MetricGuardAuthorized)
	// MetricGuardRedirected is an exported constant or variable used by the client auth core.
	MetricGuardRedirected = MetricID(internalmetrics.MetricGuardRedirected)
	// MetricSignInLatency is an exported constant or variable used by the client auth core.
	MetricSignInLatency = MetricID(internalmetrics.MetricSignInLatency)
)

// Metrics holds atomic counters and optional latency histograms.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
