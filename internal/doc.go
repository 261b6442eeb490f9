// Package internal contains helper utilities that are intentionally private
// to the schoolway client core, including device identity generation.
//
// # Sub-packages
//
//   - api — HTTP transport for the SchoolWay identity endpoints
//   - audit — async event dispatch (Dispatcher + Sink implementations)
//   - flows — pure-function flow orchestrators for every Client operation
//   - metrics — lock-free counters and latency histograms
//   - token — expiry extraction from server-issued session tokens
//
// # What this package must NOT do
//
//   - Export types that appear in the public schoolway API.
//   - Be imported by any package outside this module.
package internal
