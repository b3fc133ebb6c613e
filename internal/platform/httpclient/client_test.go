package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/trackboard/trackboard/internal/platform/config"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   100,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newTestClient(cfg *config.ClientConfig) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, "tracker-api", nil, logger)
}

func mustRequest(t *testing.T, method, url string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	return req
}

func TestClient_RetriesGETOnServerError(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(testConfig(srv.URL))
	resp, err := client.Do(context.Background(), mustRequest(t, http.MethodGet, srv.URL, nil))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestClient_NeverRetriesMutations(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				attempts.Add(1)
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer srv.Close()

			client := newTestClient(testConfig(srv.URL))
			resp, err := client.Do(context.Background(), mustRequest(t, method, srv.URL, strings.NewReader(`{}`)))
			if err == nil {
				t.Error("Do() should surface the server error")
			}
			if resp != nil {
				resp.Body.Close()
			}

			if got := attempts.Load(); got != 1 {
				t.Errorf("attempts = %d, a %s must be sent exactly once", got, method)
			}
		})
	}
}

func TestClient_DoesNotRetryNonRetryableStatus(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(testConfig(srv.URL))
	resp, err := client.Do(context.Background(), mustRequest(t, http.MethodGet, srv.URL, nil))
	if err != nil {
		t.Fatalf("Do() error = %v, a 404 is a final answer, not a failure", err)
	}
	defer resp.Body.Close()

	if got := attempts.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1 for a 4xx status", got)
	}
}

func TestClient_InjectsInvocationIDHeader(t *testing.T) {
	t.Parallel()

	var gotHeader atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader.Store(r.Header.Get("X-Invocation-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(testConfig(srv.URL))
	ctx := WithInvocationID(context.Background(), "inv-123")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	resp, err := client.Do(ctx, req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer resp.Body.Close()

	if got := gotHeader.Load(); got != "inv-123" {
		t.Errorf("X-Invocation-ID = %q, want inv-123", got)
	}
}

func TestClient_CircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 2
	client := newTestClient(cfg)

	for range 2 {
		resp, err := client.Do(context.Background(), mustRequest(t, http.MethodGet, srv.URL, nil))
		if err == nil {
			t.Fatal("Do() should fail against a 500-only server")
		}
		if resp != nil {
			resp.Body.Close()
		}
	}

	if got := client.CircuitBreakerState(); got != "open" {
		t.Fatalf("CircuitBreakerState() = %q, want open", got)
	}
	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() should report an open circuit")
	}

	// A request through an open breaker is rejected without touching the wire.
	resp, err := client.Do(context.Background(), mustRequest(t, http.MethodGet, srv.URL, nil))
	if err == nil {
		t.Error("Do() through an open breaker should be rejected")
	}
	if resp != nil {
		resp.Body.Close()
		t.Error("rejected request should carry no response")
	}
}

func TestClient_ReplaysBodyOnRetry(t *testing.T) {
	t.Parallel()

	// GET with a body is unusual but exercises the replay path without
	// involving mutation semantics.
	var bodies []string
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		if attempts.Add(1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(testConfig(srv.URL))
	resp, err := client.Do(context.Background(), mustRequest(t, http.MethodGet, srv.URL, strings.NewReader("payload")))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer resp.Body.Close()

	if len(bodies) != 2 {
		t.Fatalf("server saw %d requests, want 2", len(bodies))
	}
	for i, b := range bodies {
		if b != "payload" {
			t.Errorf("request %d body = %q, want full replay", i, b)
		}
	}
}

func TestClient_HealthCheckClosedBreaker(t *testing.T) {
	t.Parallel()

	client := newTestClient(testConfig("http://localhost:0"))
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() on a fresh client = %v, want nil", err)
	}
	if got := client.Name(); got != "tracker-api" {
		t.Errorf("Name() = %q, want tracker-api", got)
	}
}

func TestBackoff_Bounds(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		maxAttempts:     5,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     time.Second,
		multiplier:      2.0,
	}

	// Attempt 1: base 100ms, jitter keeps it within ±25%.
	for range 50 {
		d := backoff(1, cfg)
		if d < 75*time.Millisecond || d > 125*time.Millisecond {
			t.Fatalf("backoff(1) = %v, want within [75ms, 125ms]", d)
		}
	}

	// A late attempt is capped at maxInterval before jitter.
	for range 50 {
		d := backoff(10, cfg)
		if d < 750*time.Millisecond || d > 1250*time.Millisecond {
			t.Fatalf("backoff(10) = %v, want within [750ms, 1.25s]", d)
		}
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, false},
		{http.StatusNotFound, false},
		{http.StatusUnprocessableEntity, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		if got := isRetryableStatus(tt.status); got != tt.want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestIsRetryable_ContextErrorsAreNot(t *testing.T) {
	t.Parallel()

	if isRetryable(context.Canceled) {
		t.Error("context.Canceled must not be retryable")
	}
	if isRetryable(context.DeadlineExceeded) {
		t.Error("context.DeadlineExceeded must not be retryable")
	}
	if isRetryable(nil) {
		t.Error("nil error must not be retryable")
	}
}
