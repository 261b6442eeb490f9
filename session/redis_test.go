package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStoreTest(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store, err := NewRedisStore(rdb, "sw", "device-1")
	if err != nil {
		t.Fatalf("redis store: %v", err)
	}

	return store, mr, func() {
		rdb.Close()
		mr.Close()
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	want := testSession()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.User != want.User {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestRedisStoreMissingKey(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()

	got, err := store.Load(context.Background())
	if err != nil || got != nil {
		t.Fatalf("expected empty slot, got %+v, %v", got, err)
	}
}

func TestRedisStoreClearIdempotent(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear empty: %v", err)
	}
	if err := store.Save(ctx, testSession()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestRedisStoreTTLTracksExpiry(t *testing.T) {
	store, mr, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	sess := testSession()
	sess.ExpiresAt = time.Now().Add(time.Minute)
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	ttl := mr.TTL(store.key())
	if ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected ttl within (0, 1m], got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	got, err := store.Load(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected session to age out, got %+v, %v", got, err)
	}
}

func TestRedisStoreCorruptBlob(t *testing.T) {
	store, mr, done := newRedisStoreTest(t)
	defer done()

	mr.Set(store.key(), "not a session")
	if _, err := store.Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr, done := newRedisStoreTest(t)
	defer done()
	mr.Close()

	if _, err := store.Load(context.Background()); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
	if err := store.Save(context.Background(), testSession()); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
}
