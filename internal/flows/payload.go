package flows

import (
	"time"

	"github.com/AyangaWethmini/schoolway-go/internal/api"
	"github.com/AyangaWethmini/schoolway-go/session"
)

// SessionFromPayload builds the cached session from a server payload.
//
// Expiry precedence: the payload's expires field wins; when the server sent
// none, the exp claim of a JWT-shaped token is used; otherwise the session
// has no local expiry and only the server can reject it.
func SessionFromPayload(p *api.SessionPayload, now time.Time, tokenExpiry func(string) (time.Time, bool)) *session.Session {
	if p == nil {
		return nil
	}

	sess := &session.Session{
		User: session.User{
			ID:             string(p.User.ID),
			Email:          p.User.Email,
			Name:           p.User.Name,
			Role:           session.Role(p.User.Role),
			ApprovalStatus: p.User.ApprovalStatus,
			HasVan:         p.User.HasVan,
		},
		Token:     p.Token,
		IssuedAt:  now,
		ExpiresAt: p.Expires.Time,
	}

	if sess.ExpiresAt.IsZero() && tokenExpiry != nil {
		if exp, ok := tokenExpiry(p.Token); ok {
			sess.ExpiresAt = exp
		}
	}

	return sess
}
