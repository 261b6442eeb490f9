package schoolway

import (
	"context"

	"github.com/AyangaWethmini/schoolway-go/internal/flows"
	"github.com/AyangaWethmini/schoolway-go/internal/token"
	"github.com/AyangaWethmini/schoolway-go/session"
)

// StoredSession returns the session cached on-device, or nil when none is
// stored. Corrupt blobs and expired sessions (with EnforceExpiry set) are
// discarded and reported as nil; this method never fails because of a bad
// cache.
func (c *Client) StoredSession(ctx context.Context) (*session.Session, error) {
	if c == nil || c.store == nil {
		return nil, ErrClientNotReady
	}

	return flows.RunRestore(ctx, flows.RestoreDeps{
		EnforceExpiry: c.config.Session.EnforceExpiry,
		LoadSession:   c.store.Load,
		ClearSession:  c.store.Clear,

		MetricInc: func(id int) { c.metricInc(MetricID(id)) },
		EmitAudit: c.emitAudit,

		Metrics: flows.RestoreMetrics{
			Restored:         int(MetricSessionRestored),
			Empty:            int(MetricSessionRestoreEmpty),
			CorruptDiscarded: int(MetricSessionCorruptDiscarded),
			ExpiredDiscarded: int(MetricSessionExpiredDiscarded),
		},
		Events: flows.RestoreEvents{
			Restored:         auditEventSessionRestored,
			CorruptDiscarded: auditEventSessionCorrupt,
			ExpiredDiscarded: auditEventSessionExpired,
		},
	})
}

// RefreshSession asks the cookie-credentialed session endpoint for a fresh
// session and overwrites the cache on success. Refresh is opportunistic: any
// failure returns (nil, nil) and leaves the cached session alone.
func (c *Client) RefreshSession(ctx context.Context) (*session.Session, error) {
	if c == nil || c.api == nil {
		return nil, ErrClientNotReady
	}

	return flows.RunRefresh(ctx, flows.RefreshDeps{
		FetchSession: c.api.Session,
		SaveSession:  c.store.Save,
		TokenExpiry:  token.Expiry,

		MetricInc: func(id int) { c.metricInc(MetricID(id)) },
		EmitAudit: c.emitAudit,

		Metrics: flows.RefreshMetrics{
			Success: int(MetricSessionRefreshSuccess),
			Failure: int(MetricSessionRefreshFailure),
		},
		Events: flows.RefreshEvents{
			Success: auditEventRefreshSuccess,
			Failure: auditEventRefreshFailure,
		},
	})
}

// IsAuthenticated reports whether a usable session is cached on-device. It
// applies the same corruption and expiry policy as StoredSession.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	sess, err := c.StoredSession(ctx)
	return err == nil && sess != nil
}
