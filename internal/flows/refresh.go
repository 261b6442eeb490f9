package flows

import (
	"context"
	"time"

	"github.com/AyangaWethmini/schoolway-go/internal/api"
	"github.com/AyangaWethmini/schoolway-go/session"
)

// RefreshMetrics carries metric IDs needed by the refresh flow.
type RefreshMetrics struct {
	Success int
	Failure int
}

// RefreshEvents carries audit event names used by the refresh flow.
type RefreshEvents struct {
	Success string
	Failure string
}

// RefreshDeps captures session-refresh dependencies.
type RefreshDeps struct {
	Now func() time.Time

	FetchSession func(context.Context) (*api.SessionPayload, error)
	SaveSession  func(context.Context, *session.Session) error
	TokenExpiry  func(string) (time.Time, bool)

	MetricInc func(int)
	EmitAudit func(ctx context.Context, event string, success bool, userID string, err error, meta func() map[string]string)

	Metrics RefreshMetrics
	Events  RefreshEvents
}

// RunRefresh asks the cookie-credentialed session endpoint for a fresh
// session and overwrites local storage on success. Failures are logged and
// swallowed: refresh is opportunistic and never signs the user out.
func RunRefresh(ctx context.Context, deps RefreshDeps) (*session.Session, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, string, error, func() map[string]string) {}
	}
	if deps.FetchSession == nil {
		return nil, nil
	}

	payload, err := deps.FetchSession(ctx)
	if err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, "", err, nil)
		return nil, nil
	}
	if payload == nil {
		return nil, nil
	}

	sess := SessionFromPayload(payload, deps.Now(), deps.TokenExpiry)
	if deps.SaveSession != nil {
		if err := deps.SaveSession(ctx, sess); err != nil {
			deps.MetricInc(deps.Metrics.Failure)
			deps.EmitAudit(ctx, deps.Events.Failure, false, sess.User.ID, err, nil)
			return sess, nil
		}
	}

	deps.MetricInc(deps.Metrics.Success)
	deps.EmitAudit(ctx, deps.Events.Success, true, sess.User.ID, nil, nil)
	return sess, nil
}
