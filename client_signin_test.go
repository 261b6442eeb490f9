package schoolway

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/AyangaWethmini/schoolway-go/session"
)

func TestSignInSuccessCachesSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/mobileAuth" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(parentSessionBody))
	}))

	result, err := client.SignIn(context.Background(), "amaya@example.lk", "secret")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if result.Session == nil || result.Session.User.Role != RoleParent {
		t.Fatalf("expected parent session, got %+v", result.Session)
	}

	stored, err := client.Store().Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stored == nil || stored.Token != "tok-1" {
		t.Fatalf("expected cached session with token, got %+v", stored)
	}

	if got := client.Metrics().Value(MetricSignInSuccess); got != 1 {
		t.Fatalf("expected 1 success metric, got %d", got)
	}
}

func TestSignInAcceptsNumericUserID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "session": {"user": {"id": 1, "role": "PARENT"}, "token": "tok-9"}}`))
	}))

	result, err := client.SignIn(context.Background(), "amaya@example.lk", "secret")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if result.Session == nil || result.Session.User.ID != "1" || result.Session.User.Role != RoleParent {
		t.Fatalf("expected parent session with id 1, got %+v", result.Session)
	}

	stored, err := client.Store().Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stored == nil || stored.User.ID != "1" {
		t.Fatalf("expected cached session with numeric-sourced id, got %+v", stored)
	}
}

func TestSignInRejectionSurfacesServerMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success": false, "error": "Invalid credentials"}`))
	}))

	_, err := client.SignIn(context.Background(), "amaya@example.lk", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Fatalf("expected server message in error, got %q", err)
	}

	stored, err := client.Store().Load(context.Background())
	if err != nil || stored != nil {
		t.Fatalf("rejection must not touch the store, got %+v, %v", stored, err)
	}
	if got := client.Metrics().Value(MetricSignInFailure); got != 1 {
		t.Fatalf("expected 1 failure metric, got %d", got)
	}
}

func TestSignInEmptyCredentialsSkipsRequest(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.SignIn(context.Background(), "", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("empty credentials must not reach the server, got %d requests", hits.Load())
	}
}

func TestSignInNetworkErrorSurfacesSentinel(t *testing.T) {
	client, err := New().WithBaseURL("http://127.0.0.1:1").Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer client.Close()

	_, err = client.SignIn(context.Background(), "amaya@example.lk", "secret")
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if got := client.Metrics().Value(MetricSignInNetworkError); got != 1 {
		t.Fatalf("expected 1 network error metric, got %d", got)
	}
}

func TestSignInNonJSONRejectionStillFails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))

	_, err := client.SignIn(context.Background(), "amaya@example.lk", "secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !strings.Contains(err.Error(), "Internal Server Error") {
		t.Fatalf("expected status text in error, got %q", err)
	}
}

type failingStore struct{}

func (failingStore) Save(context.Context, *session.Session) error { return errors.New("disk full") }
func (failingStore) Load(context.Context) (*session.Session, error) {
	return nil, nil
}
func (failingStore) Clear(context.Context) error { return nil }

func TestSignInStoreFailureDoesNotFailSignIn(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(parentSessionBody))
	}), func(b *Builder) {
		b.WithSessionStore(failingStore{})
	})

	result, err := client.SignIn(context.Background(), "amaya@example.lk", "secret")
	if err != nil {
		t.Fatalf("store failure must not fail an accepted sign-in: %v", err)
	}
	if result.Session == nil {
		t.Fatal("expected session despite store failure")
	}
	if got := client.Metrics().Value(MetricSignInStoreFailure); got != 1 {
		t.Fatalf("expected 1 store failure metric, got %d", got)
	}
}
