package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey is the single key under which the serialized session lives in
// every key-value backed store.
const StorageKey = "user_session"

// ErrCorrupt is returned by Decode and by store Loads when the persisted
// blob cannot be interpreted as a session. Callers treat it as "no session".
var ErrCorrupt = errors.New("session blob corrupt")

// Encode serializes a session to the persisted JSON layout:
// {"user": {...}, "expires": ...}.
func Encode(s *Session) ([]byte, error) {
	if s == nil {
		return nil, errors.New("nil session")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

// Decode parses a persisted session blob.
//
// Decode enforces the session invariant: a session is either fully absent or
// carries a user with a non-empty ID. A blob that parses but violates the
// invariant is reported as [ErrCorrupt], the same as a parse failure.
func Decode(data []byte) (*Session, error) {
	if len(data) == 0 {
		return nil, ErrCorrupt
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if s.User.ID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrCorrupt)
	}

	return &s, nil
}
