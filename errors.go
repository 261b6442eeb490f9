package schoolway

import "errors"

var (
	// ErrInvalidCredentials is an exported constant or variable used by the client auth core.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNetwork is an exported constant or variable used by the client auth core.
	ErrNetwork = errors.New("network error")
	// ErrClientNotReady is an exported constant or variable used by the client auth core.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrStaleOperation reports that a continuation lost the race against a
	// newer login/logout and its result was discarded.
	ErrStaleOperation = errors.New("auth operation superseded")
	// ErrStateNotStarted is an exported constant or variable used by the client auth core.
	ErrStateNotStarted = errors.New("auth state not started")
)
