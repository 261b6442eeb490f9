// Package session defines the cached sign-in session model and the stores
// that persist it on-device.
//
// A session is the locally cached proof of sign-in: the user record returned
// by the SchoolWay identity endpoint plus an expiry marker. Exactly one
// session exists per device; every store implementation is a single-slot
// whole-value store, so writes are last-write-wins overwrites and no
// read-modify-write races are possible at this layer.
//
// # Stores
//
//   - [MemoryStore] — mutex-guarded slot for tests and ephemeral processes.
//   - [FileStore] — single JSON file written with an atomic rename.
//   - [RedisStore] — per-device Redis key with a TTL derived from expiry.
//
// # Corruption policy
//
// A blob that fails to decode, or that decodes without a user ID, is treated
// as absent: Load reports [ErrCorrupt] and callers degrade to the signed-out
// state rather than surfacing the failure to the user.
package session
