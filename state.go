package schoolway

import (
	"context"
	"errors"
	"sync"
)

// AuthState is the single source of truth for "who is signed in" on this
// device. It wraps a [Client], mirrors the stored session in memory, and
// republishes a snapshot to subscribers on every change.
//
// AuthState is an explicit dependency: construct it once, pass it to every
// consumer. There is no package-level instance, so "used outside the
// provider" is a compile-time impossibility rather than a runtime throw.
//
// # Generations
//
// Every mutating operation claims a generation number before its I/O and
// applies its result only while it is still the latest generation. A slow
// sign-in response arriving after a logout is dropped with
// [ErrStaleOperation] instead of silently repopulating the user.
type AuthState struct {
	client *Client

	mu      sync.Mutex
	user    *User
	loading bool
	started bool
	gen     uint64

	subs    map[uint64]chan AuthSnapshot
	nextSub uint64
}

// NewAuthState wires a state container to a built client. Loading starts
// true and stays true until [AuthState.Start] completes its restore.
func NewAuthState(client *Client) (*AuthState, error) {
	if client == nil {
		return nil, errors.New("auth state requires a client")
	}
	return &AuthState{
		client:  client,
		loading: true,
		subs:    make(map[uint64]chan AuthSnapshot),
	}, nil
}

// Start performs the one-time session restore. Loading transitions
// true→false exactly once, whether the restore finds a session, finds
// nothing, or the storage read fails. Calling Start again is a no-op.
func (s *AuthState) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	sess, err := s.client.StoredSession(ctx)

	s.mu.Lock()
	// A mutation that raced past the restore owns the state, loading flag
	// included; the restore result is dropped wholesale.
	if s.gen == myGen {
		if sess != nil {
			user := sess.User
			s.user = &user
		}
		s.loading = false
		s.publishLocked()
	}
	s.mu.Unlock()

	return err
}

// Snapshot returns the current state. The User pointer is a private copy;
// mutating it does not affect the state.
func (s *AuthState) Snapshot() AuthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *AuthState) snapshotLocked() AuthSnapshot {
	snap := AuthSnapshot{
		Loading:    s.loading,
		Generation: s.gen,
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
		snap.Authenticated = true
	}
	return snap
}

// Subscribe registers a snapshot channel and returns it with a cancel
// function. Publishes are non-blocking: a subscriber that falls behind
// misses intermediate snapshots, never the channel's latest buffered one.
func (s *AuthState) Subscribe() (<-chan AuthSnapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan AuthSnapshot, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *AuthState) publishLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Login signs in through the client and, when still the latest operation,
// installs the returned user. The result carries the server's rejection
// message via the error chain so the sign-in screen can display it.
func (s *AuthState) Login(ctx context.Context, email, password string) (*SignInResult, error) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil, ErrStateNotStarted
	}
	s.gen++
	myGen := s.gen
	s.loading = true
	s.publishLocked()
	s.mu.Unlock()

	result, err := s.client.SignIn(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != myGen {
		s.client.metricInc(MetricStaleResultDropped)
		s.client.emitAudit(ctx, auditEventStaleResult, false, "", ErrStaleOperation, nil)
		return nil, ErrStaleOperation
	}

	if err != nil {
		s.loading = false
		s.publishLocked()
		return nil, err
	}

	if result.Session != nil {
		user := result.Session.User
		s.user = &user
	}
	s.loading = false
	s.publishLocked()
	return result, nil
}

// Logout clears the in-memory user and the on-device cache. The user is
// cleared even when the server revoke fails; only a newer operation racing
// past this one prevents the state update.
func (s *AuthState) Logout(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrStateNotStarted
	}
	s.gen++
	myGen := s.gen
	s.loading = true
	s.publishLocked()
	s.mu.Unlock()

	err := s.client.SignOut(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != myGen {
		s.client.metricInc(MetricStaleResultDropped)
		s.client.emitAudit(ctx, auditEventStaleResult, false, "", ErrStaleOperation, nil)
		return ErrStaleOperation
	}

	s.user = nil
	s.loading = false
	s.publishLocked()
	return err
}

// Refresh re-fetches the session from the server and installs the result
// when it is still current. A failed or empty refresh leaves the user
// untouched; like every mutation, a refresh that superseded the initial
// restore settles the loading flag on completion.
func (s *AuthState) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrStateNotStarted
	}
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	sess, err := s.client.RefreshSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != myGen {
		s.client.metricInc(MetricStaleResultDropped)
		return ErrStaleOperation
	}

	settled := s.loading
	s.loading = false
	if err == nil && sess != nil {
		user := sess.User
		s.user = &user
		s.publishLocked()
	} else if settled {
		s.publishLocked()
	}
	return err
}

// SetUser replaces the in-memory user directly, for screens that edit
// profile fields the server has already accepted. It does not touch the
// on-device cache.
func (s *AuthState) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if user == nil {
		s.user = nil
	} else {
		u := *user
		s.user = &u
	}
	// Superseding an in-flight operation makes this the latest mutation, so
	// it also settles the loading flag that operation would have cleared.
	s.loading = false
	s.publishLocked()
}
