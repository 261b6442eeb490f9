package schoolway

import (
	"io"

	internalaudit "github.com/AyangaWethmini/schoolway-go/internal/audit"
	"github.com/AyangaWethmini/schoolway-go/session"
)

// Role re-exports the session routing tag so most callers never import the
// session package directly.
type Role = session.Role

const (
	// RoleDriver is an exported constant or variable used by the client auth core.
	RoleDriver = session.RoleDriver
	// RoleParent is an exported constant or variable used by the client auth core.
	RoleParent = session.RoleParent
	// RoleGuardian is an exported constant or variable used by the client auth core.
	RoleGuardian = session.RoleGuardian
)

// User is the cached account record, re-exported from the session package.
type User = session.User

// SignInResult is returned by [Client.SignIn]. Session is non-nil exactly
// when the server accepted the credentials.
type SignInResult struct {
	Session *session.Session
}

// AuthSnapshot is an immutable view of [AuthState] at one instant.
//
// Loading is true from construction until the first restore completes;
// Authenticated is derived from User presence. Generation increments with
// every login/logout/refresh and lets observers detect that the user they
// evaluated against has been superseded.
type AuthSnapshot struct {
	User          *User
	Loading       bool
	Authenticated bool
	Generation    uint64
}

// AuditEvent is a structured audit record emitted by the client.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the client's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
