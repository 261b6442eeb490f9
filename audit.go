package schoolway

import (
	"context"
	"time"

	"github.com/AyangaWethmini/schoolway-go/internal"
	internalaudit "github.com/AyangaWethmini/schoolway-go/internal/audit"
)

const (
	auditEventSignInSuccess      = "signin.success"
	auditEventSignInFailure      = "signin.failure"
	auditEventSignInNetworkError = "signin.network_error"
	auditEventSignInStoreFailure = "signin.store_failure"
	auditEventSessionRestored    = "session.restored"
	auditEventSessionCorrupt     = "session.corrupt_discarded"
	auditEventSessionExpired     = "session.expired_discarded"
	auditEventRefreshSuccess     = "session.refresh_success"
	auditEventRefreshFailure     = "session.refresh_failure"
	auditEventSignOut            = "signout"
	auditEventSignOutServerError = "signout.server_error"
	auditEventStaleResult        = "state.stale_result_dropped"
)

type auditDispatcher = internalaudit.Dispatcher

func newAuditDispatcher(cfg internalaudit.Config, sink AuditSink) *auditDispatcher {
	return internalaudit.NewDispatcher(cfg, sink)
}

// emitAudit builds and dispatches one event. meta is lazily evaluated so
// disabled audit pays nothing for metadata maps.
func (c *Client) emitAudit(ctx context.Context, eventType string, success bool, userID string, opErr error, meta func() map[string]string) {
	if c == nil || c.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		DeviceID:  c.deviceID,
		AttemptID: internal.NewAttemptID(),
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	if meta != nil {
		event.Metadata = meta()
	}

	c.audit.Emit(ctx, event)
}
