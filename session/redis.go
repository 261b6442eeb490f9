package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is an exported constant or variable used by the client auth core.
var ErrRedisUnavailable = errors.New("redis unavailable")

// RedisStore keeps the session blob under a per-device Redis key. It serves
// companion deployments (kiosk devices, test benches) where a shared Redis
// stands in for on-device storage.
//
// The key TTL tracks the session expiry so Redis drops stale sessions on its
// own; sessions without an expiry marker are stored without a TTL.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	device string
	now    func() time.Time
}

// NewRedisStore creates a session store bound to one device ID. prefix sets
// the key namespace; an empty prefix defaults to "sw".
func NewRedisStore(client redis.UniversalClient, prefix, deviceID string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if deviceID == "" {
		return nil, errors.New("device id required")
	}
	if prefix == "" {
		prefix = "sw"
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
		device: deviceID,
		now:    time.Now,
	}, nil
}

func (r *RedisStore) key() string {
	return r.prefix + ":" + r.device + ":" + StorageKey
}

// Save persists the encoded session, with a TTL when the session expires.
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	var ttl time.Duration
	if !s.ExpiresAt.IsZero() {
		ttl = s.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			ttl = time.Second
		}
	}

	if err := r.redis.Set(ctx, r.key(), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Load fetches and decodes the session. A missing key is (nil, nil).
func (r *RedisStore) Load(ctx context.Context) (*Session, error) {
	data, err := r.redis.Get(ctx, r.key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return Decode(data)
}

// Clear deletes the key. Deleting a missing key is a no-op.
func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.redis.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
