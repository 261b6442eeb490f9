package schoolway

import (
	"github.com/AyangaWethmini/schoolway-go/internal/api"
	"github.com/AyangaWethmini/schoolway-go/session"
)

// Client defines a public type used by the client auth core.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	config   Config
	api      *api.Client
	store    session.Store
	audit    *auditDispatcher
	metrics  *Metrics
	deviceID string
}

// Close flushes and stops the audit dispatcher. The client must not be used
// after Close.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.audit != nil {
		c.audit.Close()
	}
}

// DeviceID returns the identifier this client presents to the API and the
// session store.
func (c *Client) DeviceID() string {
	if c == nil {
		return ""
	}
	return c.deviceID
}

// Store exposes the session store for callers that need direct inspection
// (tests, diagnostics). Production callers go through Client methods.
func (c *Client) Store() session.Store {
	if c == nil {
		return nil
	}
	return c.store
}

// Metrics returns the live metrics recorder, or nil when metrics are
// disabled. Guards borrow it to count their own decisions.
func (c *Client) Metrics() *Metrics {
	if c == nil {
		return nil
	}
	return c.metrics
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) AuditDropped() uint64 {
	if c == nil || c.audit == nil {
		return 0
	}
	return c.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}
