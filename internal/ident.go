package internal

import "github.com/google/uuid"

// NewDeviceID generates the stable identifier a device presents to the
// SchoolWay API and to the session store. Callers persist it alongside the
// session; it is generated once per install.
func NewDeviceID() string {
	return uuid.NewString()
}

// NewAttemptID tags a single auth operation so audit events from the same
// attempt can be correlated across sinks.
func NewAttemptID() string {
	return uuid.NewString()
}
