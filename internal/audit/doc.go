// Package audit implements async event dispatching for auth-relevant client
// operations (sign-in, session restore, refresh, sign-out, guard redirects).
//
// # Components
//
//   - [Sink] — interface for event consumers (channel, JSON writer, no-op).
//   - [Dispatcher] — buffered async relay with drop-if-full / block-if-full semantics.
//   - [Event] — structured record with timestamp, type, user, device, metadata.
//
// # Architecture boundaries
//
// This package owns event buffering and sink delivery. It does NOT decide
// which events to emit — that responsibility belongs to the Client and flow
// functions.
//
// # What this package must NOT do
//
//   - Filter or suppress events based on business logic.
//   - Import the root schoolway package or any sibling internal package.
//   - Perform network I/O beyond what a caller-supplied Sink does.
package audit
