package flows

import (
	"context"
)

// SignOutMetrics carries metric IDs needed by the sign-out flow.
type SignOutMetrics struct {
	SignOut     int
	ServerError int
}

// SignOutEvents carries audit event names used by the sign-out flow.
type SignOutEvents struct {
	SignOut     string
	ServerError string
}

// SignOutDeps captures sign-out dependencies.
type SignOutDeps struct {
	RevokeSession func(context.Context) error
	ClearSession  func(context.Context) error

	MetricInc func(int)
	EmitAudit func(ctx context.Context, event string, success bool, userID string, err error, meta func() map[string]string)

	Metrics SignOutMetrics
	Events  SignOutEvents
}

// RunSignOut revokes the server session best-effort and then clears local
// storage unconditionally. The ordering is the fail-open policy: the device
// always forgets the session even when the server call fails, because the
// user's ability to log out outranks server-side consistency.
func RunSignOut(ctx context.Context, deps SignOutDeps) error {
	if deps.MetricInc == nil {
		deps.MetricInc = func(int) {}
	}
	if deps.EmitAudit == nil {
		deps.EmitAudit = func(context.Context, string, bool, string, error, func() map[string]string) {}
	}

	if deps.RevokeSession != nil {
		if err := deps.RevokeSession(ctx); err != nil {
			deps.MetricInc(deps.Metrics.ServerError)
			deps.EmitAudit(ctx, deps.Events.ServerError, false, "", err, nil)
		}
	}

	var clearErr error
	if deps.ClearSession != nil {
		clearErr = deps.ClearSession(ctx)
	}

	deps.MetricInc(deps.Metrics.SignOut)
	deps.EmitAudit(ctx, deps.Events.SignOut, clearErr == nil, "", clearErr, nil)
	return clearErr
}
