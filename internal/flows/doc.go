// Package flows contains the pure-function orchestrators behind every
// Client operation: sign-in, session restore, session refresh, sign-out.
//
// Each flow takes a Deps struct carrying exactly the collaborators it needs
// (transport calls, store calls, metric IDs, audit event names, host-level
// sentinel errors) so the logic is testable without a Client and the root
// package stays free of flow branching.
//
// # What this package must NOT do
//
//   - Import the root schoolway package (deps carry its sentinels instead).
//   - Perform I/O directly (every call goes through an injected function).
package flows
