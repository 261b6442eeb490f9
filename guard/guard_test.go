package guard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	schoolway "github.com/AyangaWethmini/schoolway-go"
	"github.com/AyangaWethmini/schoolway-go/guard"
	"github.com/AyangaWethmini/schoolway-go/session"
)

const loginRoute = "/signin"

var homes = guard.RoleHomes{
	Driver:   "/driver/home",
	Parent:   "/parent/home",
	Guardian: "/home",
}

func newState(t *testing.T, user *session.User) *schoolway.AuthState {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	client, err := schoolway.New().WithBaseURL(srv.URL).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	if user != nil {
		err := client.Store().Save(context.Background(), &session.Session{
			User:      *user,
			Token:     "tok",
			IssuedAt:  time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	state, err := schoolway.NewAuthState(client)
	if err != nil {
		t.Fatalf("NewAuthState failed: %v", err)
	}
	if err := state.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return state
}

func parentUser() *session.User {
	return &session.User{ID: "u-1", Role: session.RoleParent}
}

func driverUser() *session.User {
	return &session.User{ID: "u-2", Role: session.RoleDriver}
}

func TestRequireRoleAdmitsMatchingRole(t *testing.T) {
	state := newState(t, parentUser())
	gate := guard.RequireRole(state, schoolway.RoleParent, loginRoute)

	if v := gate.Evaluate(); v.Decision != guard.Authorized {
		t.Fatalf("expected Authorized, got %v", v)
	}
}

func TestRequireRoleRedirectsMismatchedRole(t *testing.T) {
	state := newState(t, driverUser())
	gate := guard.RequireRole(state, schoolway.RoleParent, loginRoute)

	v := gate.Evaluate()
	if v.Decision != guard.Redirect || v.Target != loginRoute {
		t.Fatalf("driver must never pass a parent gate, got %v", v)
	}
}

func TestRequireRoleRedirectsSignedOut(t *testing.T) {
	state := newState(t, nil)
	gate := guard.RequireRole(state, schoolway.RoleParent, loginRoute)

	v := gate.Evaluate()
	if v.Decision != guard.Redirect || v.Target != loginRoute {
		t.Fatalf("expected redirect to sign-in, got %v", v)
	}
}

func TestGatePendingWhileLoading(t *testing.T) {
	// Not yet started: the restore has not run and Loading holds.
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	client, err := schoolway.New().WithBaseURL(srv.URL).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	state, err := schoolway.NewAuthState(client)
	if err != nil {
		t.Fatalf("NewAuthState failed: %v", err)
	}

	role := guard.RequireRole(state, schoolway.RoleParent, loginRoute)
	if v := role.Evaluate(); v.Decision != guard.Pending {
		t.Fatalf("role gate must hold while loading, got %v", v)
	}

	anon := guard.RequireAnonymous(state, homes)
	if v := anon.Evaluate(); v.Decision != guard.Pending {
		t.Fatalf("anonymous gate must hold while loading, got %v", v)
	}
}

func TestRequireAnonymousAdmitsSignedOut(t *testing.T) {
	state := newState(t, nil)
	gate := guard.RequireAnonymous(state, homes)

	if v := gate.Evaluate(); v.Decision != guard.Authorized {
		t.Fatalf("expected Authorized for signed-out visitor, got %v", v)
	}
}

func TestRequireAnonymousRedirectsToRoleHome(t *testing.T) {
	tests := []struct {
		name string
		user *session.User
		want string
	}{
		{name: "driver", user: driverUser(), want: homes.Driver},
		{name: "parent", user: parentUser(), want: homes.Parent},
		{name: "unknown role", user: &session.User{ID: "u-3", Role: session.Role("ADMIN")}, want: homes.Guardian},
		{name: "empty role", user: &session.User{ID: "u-4"}, want: homes.Guardian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState(t, tt.user)
			gate := guard.RequireAnonymous(state, homes)

			v := gate.Evaluate()
			if v.Decision != guard.Redirect || v.Target != tt.want {
				t.Fatalf("expected redirect to %q, got %v", tt.want, v)
			}
		})
	}
}

func TestGateCountsDecisions(t *testing.T) {
	state := newState(t, parentUser())
	metrics := schoolway.NewMetrics(schoolway.MetricsConfig{Enabled: true})

	gate := guard.RequireRole(state, schoolway.RoleParent, loginRoute).WithMetrics(metrics)
	gate.Evaluate()

	deny := guard.RequireRole(state, schoolway.RoleDriver, loginRoute).WithMetrics(metrics)
	deny.Evaluate()

	if got := metrics.Value(schoolway.MetricGuardAuthorized); got != 1 {
		t.Fatalf("expected 1 authorized, got %d", got)
	}
	if got := metrics.Value(schoolway.MetricGuardRedirected); got != 1 {
		t.Fatalf("expected 1 redirected, got %d", got)
	}
}

func TestMiddlewareAdmitsAndRedirects(t *testing.T) {
	state := newState(t, parentUser())

	var served bool
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		served = true
		w.WriteHeader(http.StatusOK)
	})

	pass := guard.RequireRole(state, schoolway.RoleParent, loginRoute).Middleware()(next)
	rec := httptest.NewRecorder()
	pass.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parent/home", nil))
	if !served || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}

	served = false
	deny := guard.RequireRole(state, schoolway.RoleDriver, loginRoute).Middleware()(next)
	rec = httptest.NewRecorder()
	deny.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/driver/home", nil))
	if served {
		t.Fatal("mismatched role must not reach the handler")
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != loginRoute {
		t.Fatalf("expected 303 to %q, got %d %q", loginRoute, rec.Code, rec.Header().Get("Location"))
	}
}

func TestMiddlewarePendingAnswers503(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	client, err := schoolway.New().WithBaseURL(srv.URL).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	state, err := schoolway.NewAuthState(client)
	if err != nil {
		t.Fatalf("NewAuthState failed: %v", err)
	}

	handler := guard.RequireRole(state, schoolway.RoleParent, loginRoute).Middleware()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Error("pending gate must not reach the handler")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parent/home", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while loading, got %d", rec.Code)
	}
}
