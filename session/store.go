package session

import "context"

// Store is the single-slot persistence contract for the cached session.
//
// Semantics shared by every implementation:
//
//   - Save overwrites whatever was stored before; there is no partial update.
//   - Load returns (nil, nil) when no session is stored, and (nil, err)
//     wrapping [ErrCorrupt] when a blob exists but cannot be decoded.
//   - Clear is idempotent: clearing an empty store is not an error.
//
// Implementations do not interpret the session beyond the codec invariant;
// expiry policy belongs to the caller.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context) (*Session, error)
	Clear(ctx context.Context) error
}
