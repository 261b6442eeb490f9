// Package api is the HTTP transport for the SchoolWay identity endpoints.
//
// It speaks three routes: the credential sign-in endpoint, the
// cookie-credentialed session refresh endpoint, and an optional server-side
// sign-out endpoint. The package translates HTTP and JSON mechanics into
// typed replies; it makes no policy decisions about storage or state.
//
// # What this package must NOT do
//
//   - Touch the session store (the Client owns persistence).
//   - Retry requests (a failed call surfaces as ErrTransport exactly once).
//   - Interpret roles or approval status.
package api
