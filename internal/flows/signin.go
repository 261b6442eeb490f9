package flows

import (
	"context"
	"errors"
	"time"

	"github.com/AyangaWethmini/schoolway-go/internal/api"
	"github.com/AyangaWethmini/schoolway-go/session"
)

// SignInMetrics carries metric IDs needed by the sign-in flow.
type SignInMetrics struct {
	Success      int
	Failure      int
	NetworkError int
	StoreFailure int
	Latency      int
}

// SignInEvents carries audit event names used by the sign-in flow.
type SignInEvents struct {
	Success      string
	Failure      string
	NetworkError string
	StoreFailure string
}

// SignInErrors carries host-level sentinel errors used by the sign-in flow.
type SignInErrors struct {
	ClientNotReady     error
	InvalidCredentials error
	Network            error
}

// SignInDeps captures sign-in dependencies.
type SignInDeps struct {
	Now         func() time.Time
	PostSignIn  func(context.Context, string, string) (*api.SignInReply, error)
	SaveSession func(context.Context, *session.Session) error
	TokenExpiry func(string) (time.Time, bool)

	MetricInc     func(int)
	RecordLatency func(int, time.Duration)
	EmitAudit     func(ctx context.Context, event string, success bool, userID string, err error, meta func() map[string]string)

	Metrics SignInMetrics
	Events  SignInEvents
	Errors  SignInErrors
}

func (d *SignInDeps) normalize() error {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.MetricInc == nil {
		d.MetricInc = func(int) {}
	}
	if d.RecordLatency == nil {
		d.RecordLatency = func(int, time.Duration) {}
	}
	if d.EmitAudit == nil {
		d.EmitAudit = func(context.Context, string, bool, string, error, func() map[string]string) {}
	}
	if d.PostSignIn == nil || d.SaveSession == nil {
		return d.Errors.ClientNotReady
	}
	return nil
}

// RunSignIn executes the sign-in flow: credential post, payload validation,
// local persistence. Storage failure after an accepted sign-in degrades to a
// success without a durable session — the server accepted the credentials,
// so the run stays signed in even if the device cannot remember it.
func RunSignIn(ctx context.Context, email, password string, deps SignInDeps) (*session.Session, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}

	if email == "" || password == "" {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, "", deps.Errors.InvalidCredentials, func() map[string]string {
			return map[string]string{
				"email":  email,
				"reason": "empty_credentials",
			}
		})
		return nil, deps.Errors.InvalidCredentials
	}

	start := deps.Now()
	reply, err := deps.PostSignIn(ctx, email, password)
	deps.RecordLatency(deps.Metrics.Latency, deps.Now().Sub(start))
	if err != nil {
		deps.MetricInc(deps.Metrics.NetworkError)
		deps.EmitAudit(ctx, deps.Events.NetworkError, false, "", err, func() map[string]string {
			return map[string]string{
				"email": email,
			}
		})
		return nil, wrapSentinel(deps.Errors.Network, err)
	}

	// Some deployments send the user at the top level instead of wrapping it
	// in a session object; accept both shapes.
	payload := reply.Session
	if payload == nil && reply.User != nil {
		payload = &api.SessionPayload{User: *reply.User}
	}

	accepted := payload != nil && payload.User.ID != "" && (reply.Success || reply.Error == "")
	if !accepted {
		deps.MetricInc(deps.Metrics.Failure)
		reason := reply.Error
		if reason == "" {
			reason = "missing session payload"
		}
		deps.EmitAudit(ctx, deps.Events.Failure, false, "", deps.Errors.InvalidCredentials, func() map[string]string {
			return map[string]string{
				"email":  email,
				"reason": reason,
			}
		})
		return nil, wrapMessage(deps.Errors.InvalidCredentials, reason)
	}

	sess := SessionFromPayload(payload, deps.Now(), deps.TokenExpiry)

	if err := deps.SaveSession(ctx, sess); err != nil {
		// Persisting is best-effort: the sign-in already succeeded.
		deps.MetricInc(deps.Metrics.StoreFailure)
		deps.EmitAudit(ctx, deps.Events.StoreFailure, false, sess.User.ID, err, nil)
	}

	deps.MetricInc(deps.Metrics.Success)
	deps.EmitAudit(ctx, deps.Events.Success, true, sess.User.ID, nil, func() map[string]string {
		return map[string]string{
			"role": string(sess.User.Role),
		}
	})

	return sess, nil
}

func wrapSentinel(sentinel, cause error) error {
	if sentinel == nil {
		return cause
	}
	return &sentinelError{sentinel: sentinel, cause: cause}
}

func wrapMessage(sentinel error, message string) error {
	if sentinel == nil {
		return errors.New(message)
	}
	return &sentinelError{sentinel: sentinel, cause: errors.New(message)}
}

// sentinelError joins a host sentinel with the underlying cause so callers
// can match either with errors.Is while users see the server's message.
type sentinelError struct {
	sentinel error
	cause    error
}

func (e *sentinelError) Error() string {
	if e.cause == nil {
		return e.sentinel.Error()
	}
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *sentinelError) Unwrap() []error {
	return []error{e.sentinel, e.cause}
}
