// Package guard exposes route gating built on top of an AuthState snapshot.
//
// # Gates
//
//   - [RequireRole] — admits only a signed-in user with one specific role.
//   - [RequireAnonymous] — admits only signed-out visitors; signed-in users
//     are sent to their role's home route.
//
// Each gate evaluates the current snapshot to a [Verdict]: hold while the
// restore is still running, pass, or redirect. The same gate serves UI
// navigation (act on the Verdict directly) and HTTP handlers (wrap with
// [Gate.Middleware]).
//
// # Architecture boundaries
//
// This package translates snapshots into routing decisions. It does NOT
// perform authentication itself — who the user is comes entirely from
// AuthState.
//
// # What this package must NOT do
//
//   - Read or write session storage (AuthState owns session I/O).
//   - Render content for a role the user does not hold, not even briefly
//     while state is still loading.
//   - Mutate auth state; gates are read-only observers.
package guard
