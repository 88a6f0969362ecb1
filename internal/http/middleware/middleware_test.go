package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.OPTIONS("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })
	return r
}

func TestCORSPermissiveHeadersOnEveryResponse(t *testing.T) {
	r := newEngine(CORS(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Fatalf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	r := newEngine(CORS(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("preflight should be 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("preflight body should be empty, got %q", w.Body.String())
	}
}

func TestCORSAllowListRejectsUnknownOrigin(t *testing.T) {
	r := newEngine(CORS([]string{"http://localhost:5173"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allowed origin not echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("unknown origin should be forbidden, got %d", w.Code)
	}
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	if w.Body.String() == "" || w.Header().Get(RequestIDHeader) != w.Body.String() {
		t.Fatalf("generated id mismatch: header=%q body=%q", w.Header().Get(RequestIDHeader), w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" {
		t.Fatalf("incoming id not reused, got %q", w.Body.String())
	}
}

func TestRecoveryReturnsJSON(t *testing.T) {
	r := newEngine(RequestID(), Recovery(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error":"kaboom"`) || !strings.Contains(w.Body.String(), `"message":"Internal server error"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	r := newEngine(RateLimit(2, nil))

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}

	disabled := newEngine(RateLimit(0, nil))
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		disabled.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("disabled limiter rejected request %d", i)
		}
	}
}

func TestRequestIDRejectsOversizedOrUnprintable(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	for _, incoming := range []string{strings.Repeat("a", maxRequestIDLen+1), "abc\x01def", "has space"} {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Body.String()
		if got == incoming || len(got) != 36 {
			t.Fatalf("incoming id %q should be replaced by a uuid, got %q", incoming, got)
		}
		if w.Header().Get(RequestIDHeader) != got {
			t.Fatalf("response header %q does not match context id %q", w.Header().Get(RequestIDHeader), got)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("b", maxRequestIDLen))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != strings.Repeat("b", maxRequestIDLen) {
		t.Fatalf("id at the length limit should be kept")
	}
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	clock := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(5)
	store.now = func() time.Time { return clock }

	first := store.get("10.0.0.1")
	store.get("10.0.0.2")
	if len(store.limiters) != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", len(store.limiters))
	}

	clock = clock.Add(limiterIdleTTL / 2)
	if store.get("10.0.0.1") != first {
		t.Fatalf("active client should keep its bucket")
	}

	clock = clock.Add(limiterIdleTTL/2 + time.Minute)
	store.get("10.0.0.3")
	if _, ok := store.limiters["10.0.0.2"]; ok {
		t.Fatalf("idle client was not swept")
	}
	if _, ok := store.limiters["10.0.0.1"]; !ok {
		t.Fatalf("recently seen client was swept")
	}
	if len(store.limiters) != 2 {
		t.Fatalf("expected 2 tracked clients after sweep, got %d", len(store.limiters))
	}
}
