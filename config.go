package schoolway

import (
	"errors"
	"strings"
	"time"
)

// Config defines a public type used by the client auth core.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig describes the remote identity endpoints and request policy.
//
// The source application issued requests with no timeout at all; a hung
// sign-in would block forever. Timeout defaults to 15s here and zero is
// rejected by Validate.
type APIConfig struct {
	BaseURL     string
	SignInPath  string
	SessionPath string
	SignOutPath string // optional; empty disables the server-side revoke call
	Timeout     time.Duration
	UserAgent   string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by the client auth core.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// FilePath selects the on-device FileStore when no explicit store or
	// Redis client is supplied. Empty falls back to an in-memory store.
	FilePath string

	// RedisPrefix namespaces the session key when a Redis client is used.
	RedisPrefix string

	// EnforceExpiry discards a stored session whose expiry marker has
	// passed instead of presenting it as signed in.
	EnforceExpiry bool
}

// AuditConfig defines a public type used by the client auth core.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by the client auth core.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			SignInPath:  "/api/mobileAuth",
			SessionPath: "/api/auth/session",
			Timeout:     15 * time.Second,
			UserAgent:   "schoolway-go/1.0",
		},
		Session: SessionConfig{
			RedisPrefix:   "sw",
			EnforceExpiry: true,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are values; a struct copy is a deep copy.
	return cfg
}

// Validate checks the configuration for internal consistency. It is called
// by [Builder.Build]; direct use is only needed when assembling configs from
// external input.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL required")
	}
	if strings.HasSuffix(c.API.BaseURL, "/") {
		return errors.New("API BaseURL must not end with a slash")
	}
	if c.API.SignInPath == "" || !strings.HasPrefix(c.API.SignInPath, "/") {
		return errors.New("API SignInPath must start with a slash")
	}
	if c.API.SessionPath == "" || !strings.HasPrefix(c.API.SessionPath, "/") {
		return errors.New("API SessionPath must start with a slash")
	}
	if c.API.SignOutPath != "" && !strings.HasPrefix(c.API.SignOutPath, "/") {
		return errors.New("API SignOutPath must start with a slash")
	}
	if c.API.Timeout <= 0 {
		return errors.New("API Timeout must be positive")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("Audit BufferSize must not be negative")
	}
	return nil
}
