package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session blob in process memory. It is the default
// store for tests and for short-lived processes that do not need the session
// to survive a restart.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemoryStore describes the newmemorystore operation and its observable behavior.
//
// NewMemoryStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save encodes and stores the session, replacing any previous value.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.blob = data
	m.mu.Unlock()
	return nil
}

// Load decodes the stored session. Missing slot returns (nil, nil).
func (m *MemoryStore) Load(_ context.Context) (*Session, error) {
	m.mu.Lock()
	blob := m.blob
	m.mu.Unlock()

	if blob == nil {
		return nil, nil
	}
	return Decode(blob)
}

// Clear empties the slot. Clearing an empty slot is a no-op.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.blob = nil
	m.mu.Unlock()
	return nil
}
