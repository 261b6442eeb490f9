// Command schoolway-loadtest measures sign-in and restore throughput of the
// client auth core against an in-process stub backend. It answers one
// question: how much latency the client layer itself adds on top of the wire.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	schoolway "github.com/AyangaWethmini/schoolway-go"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		devices     = flag.Int("devices", 1000, "number of device clients to build")
		concurrency = flag.Int("concurrency", 64, "number of concurrent workers")
		ops         = flag.Int("ops", 20000, "operations per phase (signin + restore)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix      = flag.String("prefix", "sw", "session key prefix")
	)
	flag.Parse()

	if *devices <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "devices, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		rdb     redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		rdb = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = rdb.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		rdb = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = rdb.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	backend := httptest.NewServer(stubBackend())
	defer backend.Close()
	fmt.Printf("stub backend at %s\n", backend.URL)

	clients := make([]*schoolway.Client, *devices)
	fmt.Printf("building %d device clients...\n", *devices)
	startBuild := time.Now()
	for i := 0; i < *devices; i++ {
		cfg := loadtestConfig(backend.URL, *prefix)
		client, err := schoolway.New().
			WithConfig(cfg).
			WithRedis(rdb).
			WithDeviceID(fmt.Sprintf("device-%d", i)).
			Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
			os.Exit(1)
		}
		clients[i] = client
	}
	defer func() {
		for _, c := range clients {
			c.Close()
		}
	}()
	fmt.Printf("built in %s\n", time.Since(startBuild).Round(time.Millisecond))

	signInStats := runSignInPhase(ctx, clients, *ops, *concurrency)
	restoreStats := runRestorePhase(ctx, clients, *ops, *concurrency)

	fmt.Println("---- results ----")
	printStats("signin", signInStats)
	printStats("restore", restoreStats)
}

func loadtestConfig(baseURL, prefix string) schoolway.Config {
	var cfg schoolway.Config
	cfg.API.BaseURL = baseURL
	cfg.API.SignInPath = "/api/mobileAuth"
	cfg.API.SessionPath = "/api/auth/session"
	cfg.API.Timeout = 10 * time.Second
	cfg.Session.RedisPrefix = prefix
	cfg.Session.EnforceExpiry = true
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true
	return cfg
}

func runSignInPhase(ctx context.Context, clients []*schoolway.Client, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(len(clients))
				t0 := time.Now()
				_, err := clients[idx].SignIn(ctx, "load@example.lk", "load-test")
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runRestorePhase(ctx context.Context, clients []*schoolway.Client, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*6151))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(len(clients))
				t0 := time.Now()
				_, err := clients[idx].StoredSession(ctx)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

func stubBackend() http.Handler {
	session := map[string]any{
		"user": map[string]any{
			"id":             "u-load",
			"email":          "load@example.lk",
			"name":           "Load Tester",
			"role":           "PARENT",
			"approvalstatus": "approved",
			"hasVan":         false,
		},
		"token":   "load-token",
		"expires": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/mobileAuth", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"session": session,
		})
	})
	mux.HandleFunc("GET /api/auth/session", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(session)
	})
	return mux
}
