package schoolway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AyangaWethmini/schoolway-go/session"
)

const parentSessionBody = `{
	"success": true,
	"session": {
		"user": {
			"id": "u-100",
			"email": "amaya@example.lk",
			"name": "Amaya",
			"role": "PARENT",
			"approvalstatus": "approved",
			"hasVan": false
		},
		"token": "tok-1",
		"expires": null
	}
}`

func newTestClient(t *testing.T, handler http.Handler, opts ...func(*Builder)) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b := New().WithBaseURL(srv.URL)
	for _, opt := range opts {
		opt(b)
	}

	client, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(client.Close)

	return client
}

func parentSession(expires time.Time) *session.Session {
	return &session.Session{
		User: session.User{
			ID:             "u-100",
			Email:          "amaya@example.lk",
			Name:           "Amaya",
			Role:           session.RoleParent,
			ApprovalStatus: "approved",
		},
		Token:     "tok-1",
		IssuedAt:  time.Now().Add(-time.Minute),
		ExpiresAt: expires,
	}
}

func mustSave(t *testing.T, store session.Store, s *session.Session) {
	t.Helper()
	if err := store.Save(context.Background(), s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}
