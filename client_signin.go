package schoolway

import (
	"context"
	"time"

	"github.com/AyangaWethmini/schoolway-go/internal/flows"
	"github.com/AyangaWethmini/schoolway-go/internal/token"
)

// SignIn posts credentials to the identity endpoint and, when accepted,
// caches the returned session on-device.
//
// Failure contract: a server rejection surfaces as [ErrInvalidCredentials]
// wrapping the server's message; an unreachable server surfaces as
// [ErrNetwork]. Neither touches the stored session. A storage write failure
// after acceptance does not fail the sign-in — the run is authenticated even
// if the device cannot remember it.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	if c == nil || c.api == nil {
		return nil, ErrClientNotReady
	}

	sess, err := flows.RunSignIn(ctx, email, password, flows.SignInDeps{
		PostSignIn:  c.api.SignIn,
		SaveSession: c.store.Save,
		TokenExpiry: token.Expiry,

		MetricInc:     func(id int) { c.metricInc(MetricID(id)) },
		RecordLatency: func(id int, d time.Duration) { c.metrics.RecordLatency(MetricID(id), d) },
		EmitAudit:     c.emitAudit,

		Metrics: flows.SignInMetrics{
			Success:      int(MetricSignInSuccess),
			Failure:      int(MetricSignInFailure),
			NetworkError: int(MetricSignInNetworkError),
			StoreFailure: int(MetricSignInStoreFailure),
			Latency:      int(MetricSignInLatency),
		},
		Events: flows.SignInEvents{
			Success:      auditEventSignInSuccess,
			Failure:      auditEventSignInFailure,
			NetworkError: auditEventSignInNetworkError,
			StoreFailure: auditEventSignInStoreFailure,
		},
		Errors: flows.SignInErrors{
			ClientNotReady:     ErrClientNotReady,
			InvalidCredentials: ErrInvalidCredentials,
			Network:            ErrNetwork,
		},
	})
	if err != nil {
		return nil, err
	}

	return &SignInResult{Session: sess}, nil
}
