package guard

import (
	schoolway "github.com/AyangaWethmini/schoolway-go"
)

// Decision is the outcome of evaluating a gate against one snapshot.
type Decision int

const (
	// Pending means the session restore has not finished. Render nothing:
	// admitting or redirecting now would flash the wrong screen.
	Pending Decision = iota

	// Authorized admits the request to the gated route.
	Authorized

	// Redirect sends the visitor to Verdict.Target instead.
	Redirect
)

// String describes the Decision for logs and test failures.
func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Authorized:
		return "authorized"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Verdict pairs a Decision with its redirect target. Target is empty unless
// Decision is Redirect.
type Verdict struct {
	Decision Decision
	Target   string
}

// RoleHomes maps each role to its landing route. A missing or unrecognized
// role falls back to the guardian home, which carries no role-specific
// content.
type RoleHomes struct {
	Driver   string
	Parent   string
	Guardian string
}

// For resolves the home route for a role.
func (h RoleHomes) For(role schoolway.Role) string {
	switch role {
	case schoolway.RoleDriver:
		return h.Driver
	case schoolway.RoleParent:
		return h.Parent
	default:
		return h.Guardian
	}
}

// Gate evaluates one admission rule against an AuthState. Gates are cheap
// and stateless; build one per protected route.
type Gate struct {
	state   *schoolway.AuthState
	decide  func(schoolway.AuthSnapshot) Verdict
	metrics *schoolway.Metrics
}

// RequireRole builds a gate that admits only a signed-in user holding role.
// Anyone else, signed out or holding a different role, is redirected to
// loginRoute.
func RequireRole(state *schoolway.AuthState, role schoolway.Role, loginRoute string) *Gate {
	return &Gate{
		state: state,
		decide: func(snap schoolway.AuthSnapshot) Verdict {
			if snap.Loading {
				return Verdict{Decision: Pending}
			}
			if snap.User == nil || snap.User.Role != role {
				return Verdict{Decision: Redirect, Target: loginRoute}
			}
			return Verdict{Decision: Authorized}
		},
	}
}

// RequireAnonymous builds a gate for sign-in style routes: signed-out
// visitors pass, signed-in users are sent to their role's home.
func RequireAnonymous(state *schoolway.AuthState, homes RoleHomes) *Gate {
	return &Gate{
		state: state,
		decide: func(snap schoolway.AuthSnapshot) Verdict {
			if snap.Loading {
				return Verdict{Decision: Pending}
			}
			if snap.User != nil {
				return Verdict{Decision: Redirect, Target: homes.For(snap.User.Role)}
			}
			return Verdict{Decision: Authorized}
		},
	}
}

// WithMetrics counts admissions and redirects on m. Returns the gate for
// chaining.
func (g *Gate) WithMetrics(m *schoolway.Metrics) *Gate {
	g.metrics = m
	return g
}

// Evaluate decides against the state's current snapshot.
func (g *Gate) Evaluate() Verdict {
	return g.Decide(g.state.Snapshot())
}

// Decide applies the gate's rule to one snapshot. Exposed so callers holding
// a snapshot from Subscribe can re-evaluate without another state read.
func (g *Gate) Decide(snap schoolway.AuthSnapshot) Verdict {
	v := g.decide(snap)
	switch v.Decision {
	case Authorized:
		g.metrics.Inc(schoolway.MetricGuardAuthorized)
	case Redirect:
		g.metrics.Inc(schoolway.MetricGuardRedirected)
	}
	return v
}
