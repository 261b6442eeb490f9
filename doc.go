// Package schoolway is the client-side auth core for the SchoolWay school
// transportation platform: session persistence, sign-in against the remote
// identity endpoint, a reactive auth state container, and role-based route
// guards for the parent, driver, and guardian sections.
//
// The package is designed for a single device process: Client methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build], and [AuthState] serializes every state transition.
//
// # Architecture boundaries
//
// schoolway is the public surface. It exposes [Client], [Builder], [Config],
// [AuthState], and value types (SignInResult, AuthSnapshot, MetricsSnapshot).
// All internal coordination — flow orchestration, HTTP transport, audit
// dispatch, token parsing — lives under internal/ and is never exported.
// Session models and stores live in the session sub-package; guards in guard.
//
// # What this package must NOT do
//
//   - Expose HTTP clients, internal stores, or wire details in its public API.
//   - Validate credentials locally (the server is the only authority).
//   - Perform I/O outside of Client and AuthState methods (construction via
//     Builder is allocation-only until Build).
//
// # Failure contract
//
// Every expected failure — bad password, offline device, corrupt cache —
// comes back as an error value or a signed-out state, never a panic. The
// device always prefers "appears logged out" over a crash.
package schoolway
