package schoolway

import (
	"errors"
	"net/http"

	"github.com/AyangaWethmini/schoolway-go/internal"
	"github.com/AyangaWethmini/schoolway-go/internal/api"
	internalaudit "github.com/AyangaWethmini/schoolway-go/internal/audit"
	"github.com/AyangaWethmini/schoolway-go/session"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by the client auth core.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	httpClient *http.Client
	redis      redis.UniversalClient
	store      session.Store
	deviceID   string
	auditSink  AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration wholesale.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the API base URL without replacing the rest of the
// default configuration.
func (b *Builder) WithBaseURL(url string) *Builder {
	b.config.API.BaseURL = url
	return b
}

// WithHTTPClient supplies a custom HTTP client. The caller owns cookie jar
// and timeout policy when this is used.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithSessionStore supplies an explicit session store, overriding the
// Redis/file/memory selection.
func (b *Builder) WithSessionStore(store session.Store) *Builder {
	b.store = store
	return b
}

// WithRedis selects a Redis-backed session store keyed by the device ID.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithDeviceID pins the device identifier. When absent, Build generates one.
func (b *Builder) WithDeviceID(id string) *Builder {
	b.deviceID = id
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration, wires the transport and store, and
// returns a ready [Client]. A builder can be used once.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deviceID := b.deviceID
	if deviceID == "" {
		deviceID = internal.NewDeviceID()
	}

	// -------- SESSION STORE --------
	store := b.store
	if store == nil {
		switch {
		case b.redis != nil:
			rs, err := session.NewRedisStore(b.redis, cfg.Session.RedisPrefix, deviceID)
			if err != nil {
				return nil, err
			}
			store = rs
		case cfg.Session.FilePath != "":
			fs, err := session.NewFileStore(cfg.Session.FilePath)
			if err != nil {
				return nil, err
			}
			store = fs
		default:
			store = session.NewMemoryStore()
		}
	}

	// -------- TRANSPORT --------
	transport, err := api.New(api.Config{
		BaseURL:     cfg.API.BaseURL,
		SignInPath:  cfg.API.SignInPath,
		SessionPath: cfg.API.SessionPath,
		SignOutPath: cfg.API.SignOutPath,
		Timeout:     cfg.API.Timeout,
		UserAgent:   cfg.API.UserAgent,
	}, b.httpClient, deviceID)
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:   cfg,
		api:      transport,
		store:    store,
		deviceID: deviceID,
	}
	client.audit = newAuditDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)
	client.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return client, nil
}
