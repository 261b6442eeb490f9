package internaldefs

import (
	schoolway "github.com/AyangaWethmini/schoolway-go"
)

// CounterDef defines a public type used by exporter packages.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   schoolway.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by exporter packages.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   schoolway.MetricID
	Name string
	Help string
}

// CounterDefs is the shared counter definition table for all exporters.
var CounterDefs = []CounterDef{
	{ID: schoolway.MetricSignInSuccess, Name: "schoolway_signin_success_total", Help: "Accepted sign-in attempts."},
	{ID: schoolway.MetricSignInFailure, Name: "schoolway_signin_failure_total", Help: "Sign-in attempts rejected by the server."},
	{ID: schoolway.MetricSignInNetworkError, Name: "schoolway_signin_network_error_total", Help: "Sign-in attempts that never reached the server."},
	{ID: schoolway.MetricSignInStoreFailure, Name: "schoolway_signin_store_failure_total", Help: "Accepted sign-ins whose session could not be cached on-device."},
	{ID: schoolway.MetricSessionRestored, Name: "schoolway_session_restored_total", Help: "Sessions restored from on-device storage."},
	{ID: schoolway.MetricSessionRestoreEmpty, Name: "schoolway_session_restore_empty_total", Help: "Restores that found no usable session."},
	{ID: schoolway.MetricSessionCorruptDiscarded, Name: "schoolway_session_corrupt_discarded_total", Help: "Corrupt cached sessions discarded on restore."},
	{ID: schoolway.MetricSessionExpiredDiscarded, Name: "schoolway_session_expired_discarded_total", Help: "Expired cached sessions discarded on restore."},
	{ID: schoolway.MetricSessionRefreshSuccess, Name: "schoolway_session_refresh_success_total", Help: "Successful server session refreshes."},
	{ID: schoolway.MetricSessionRefreshFailure, Name: "schoolway_session_refresh_failure_total", Help: "Failed server session refreshes."},
	{ID: schoolway.MetricSignOut, Name: "schoolway_signout_total", Help: "Sign-out operations."},
	{ID: schoolway.MetricSignOutServerError, Name: "schoolway_signout_server_error_total", Help: "Sign-outs whose server revoke failed."},
	{ID: schoolway.MetricStaleResultDropped, Name: "schoolway_stale_result_dropped_total", Help: "Operation results dropped because a newer operation superseded them."},
	{ID: schoolway.MetricGuardAuthorized, Name: "schoolway_guard_authorized_total", Help: "Route gate evaluations that admitted the visitor."},
	{ID: schoolway.MetricGuardRedirected, Name: "schoolway_guard_redirected_total", Help: "Route gate evaluations that redirected the visitor."},
}

// HistogramDefs is the shared histogram definition table for all exporters.
var HistogramDefs = []HistogramDef{
	{ID: schoolway.MetricSignInLatency, Name: "schoolway_signin_latency_seconds", Help: "Sign-in round-trip latency histogram."},
}

// HistogramBounds are the rendered le labels, in bucket order.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"1",
	"+Inf",
}

// HistogramBoundSuffix are metric-name-safe forms of HistogramBounds.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"1",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
