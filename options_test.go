package mindly

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestWithHTTPTimeout(t *testing.T) {
	c, err := New("http://example.com", WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}

	if _, err := New("http://example.com", WithHTTPTimeout(0)); err == nil {
		t.Fatal("zero timeout must be rejected")
	}
}

func TestWithPageSize(t *testing.T) {
	c, err := New("http://example.com", WithPageSize(25))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.pageSize != 25 {
		t.Fatalf("page size = %d", c.pageSize)
	}
	if _, err := New("http://example.com", WithPageSize(0)); err == nil {
		t.Fatal("non-positive page size must be rejected")
	}
}

func TestTokenTransportAttachesBearer(t *testing.T) {
	var seen string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get("Authorization")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})

	c, err := New("http://example.com", WithToken("tok-1"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Swap in the recording transport beneath the token wrapper.
	c.http.Transport.(*tokenTransport).base = rt

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request: %v", err)
	}
	if seen != "Bearer tok-1" {
		t.Fatalf("Authorization = %q", seen)
	}
	// The original request must stay untouched.
	if req.Header.Get("Authorization") != "" {
		t.Fatal("transport must clone, not mutate, the request")
	}
}

func TestTokenTransportSkipsWhenLoggedOut(t *testing.T) {
	var seen string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get("Authorization")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})

	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.http.Transport.(*tokenTransport).base = rt

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", nil)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request: %v", err)
	}
	if seen != "" {
		t.Fatalf("no token configured, yet Authorization = %q", seen)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.BaseURL == "" || cfg.HTTPTimeout <= 0 || cfg.PageSize <= 0 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestConfigFromEnvOverride(t *testing.T) {
	t.Setenv("MINDLY_BASE_URL", "http://mindly.test:9000")
	t.Setenv("MINDLY_HTTP_TIMEOUT", "8s")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.BaseURL != "http://mindly.test:9000" || cfg.HTTPTimeout != 8*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
