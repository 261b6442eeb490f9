package flows

import (
	"context"
	"errors"
	"time"

	"github.com/AyangaWethmini/schoolway-go/session"
)

// RestoreMetrics carries metric IDs needed by the restore flow.
type RestoreMetrics struct {
	Restored         int
	Empty            int
	CorruptDiscarded int
	ExpiredDiscarded int
}

// RestoreEvents carries audit event names used by the restore flow.
type RestoreEvents struct {
	Restored         string
	CorruptDiscarded string
	ExpiredDiscarded string
}

// RestoreDeps captures session-restore dependencies.
type RestoreDeps struct {
	Now           func() time.Time
	EnforceExpiry bool

	LoadSession  func(context.Context) (*session.Session, error)
	ClearSession func(context.Context) error

	MetricInc func(int)
	EmitAudit func(ctx context.Context, event string, success bool, userID string, err error, meta func() map[string]string)

	Metrics RestoreMetrics
	Events  RestoreEvents
}

// RunRestore reads the stored session on cold start. Every failure mode —
// missing, corrupt, expired, storage error — degrades to (nil, nil): the
// device simply appears signed out. Corrupt and expired blobs are cleared so
// the next start does not rediscover them.
func RunRestore(ctx context.Context, deps RestoreDeps) (*session.Session, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, string, error, func() map[string]string) {}
	}
	if deps.LoadSession == nil {
		return nil, nil
	}

	sess, err := deps.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, session.ErrCorrupt) {
			deps.MetricInc(deps.Metrics.CorruptDiscarded)
			deps.EmitAudit(ctx, deps.Events.CorruptDiscarded, false, "", err, nil)
			if deps.ClearSession != nil {
				_ = deps.ClearSession(ctx)
			}
			return nil, nil
		}
		// Storage read failure: appear signed out rather than crash.
		deps.MetricInc(deps.Metrics.Empty)
		return nil, nil
	}
	if sess == nil {
		deps.MetricInc(deps.Metrics.Empty)
		return nil, nil
	}

	if deps.EnforceExpiry && sess.Expired(deps.Now()) {
		deps.MetricInc(deps.Metrics.ExpiredDiscarded)
		deps.EmitAudit(ctx, deps.Events.ExpiredDiscarded, false, sess.User.ID, nil, func() map[string]string {
			return map[string]string{
				"expired_at": sess.ExpiresAt.Format(time.RFC3339),
			}
		})
		if deps.ClearSession != nil {
			_ = deps.ClearSession(ctx)
		}
		return nil, nil
	}

	deps.MetricInc(deps.Metrics.Restored)
	deps.EmitAudit(ctx, deps.Events.Restored, true, sess.User.ID, nil, nil)
	return sess, nil
}
