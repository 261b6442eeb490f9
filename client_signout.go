package schoolway

import (
	"context"

	"github.com/AyangaWethmini/schoolway-go/internal/flows"
)

// SignOut revokes the server session best-effort and clears the on-device
// cache unconditionally. Fail-open: a dead server never traps a user in a
// signed-in state. The returned error is non-nil only when the local clear
// itself failed.
func (c *Client) SignOut(ctx context.Context) error {
	if c == nil || c.api == nil || c.store == nil {
		return ErrClientNotReady
	}

	return flows.RunSignOut(ctx, flows.SignOutDeps{
		RevokeSession: c.api.SignOut,
		ClearSession:  c.store.Clear,

		MetricInc: func(id int) { c.metricInc(MetricID(id)) },
		EmitAudit: c.emitAudit,

		Metrics: flows.SignOutMetrics{
			SignOut:     int(MetricSignOut),
			ServerError: int(MetricSignOutServerError),
		},
		Events: flows.SignOutEvents{
			SignOut:     auditEventSignOut,
			ServerError: auditEventSignOutServerError,
		},
	})
}
