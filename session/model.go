package session

import "time"

// Role is the routing tag carried by a signed-in user. It selects which
// section of the app a guard admits the user into.
type Role string

const (
	// RoleDriver is an exported constant or variable used by the client auth core.
	RoleDriver Role = "DRIVER"
	// RoleParent is an exported constant or variable used by the client auth core.
	RoleParent Role = "PARENT"
	// RoleGuardian is the fallback for an empty or unrecognized role tag.
	RoleGuardian Role = ""
)

// Known reports whether r is one of the explicitly modelled roles. Any other
// value routes to the guardian section.
func (r Role) Known() bool {
	return r == RoleDriver || r == RoleParent
}

// User is the account record cached inside a [Session].
//
// ApprovalStatus and HasVan are driver-specific fields consumed, not
// computed, by this module: the server owns their meaning.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	Role           Role   `json:"role,omitempty"`
	ApprovalStatus string `json:"approvalstatus,omitempty"`
	HasVan         bool   `json:"hasVan,omitempty"`
}

// Session defines a public type used by the client auth core.
//
// Session instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token,omitempty"`
	IssuedAt  time.Time `json:"issued_at,omitempty"`
	ExpiresAt time.Time `json:"expires"`
}

// Expired reports whether the session's expiry marker has passed at now.
// A zero ExpiresAt means the server issued no expiry and the session never
// expires locally.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}

// Clone returns a deep copy so callers can hand sessions across goroutines
// without sharing mutable state.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}
