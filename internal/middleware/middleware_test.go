package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/pkg/clientip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func serve(h http.Handler, method, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, nil)
	r.RemoteAddr = "192.0.2.1:4000"
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestSecurityHeaders(t *testing.T) {
	w := serve(SecurityHeaders(ok), "GET", "/", nil)
	assert.Equal(t, "nosniff", w.Header().Get(headerXContentTypeOptions))
	assert.Equal(t, "DENY", w.Header().Get(headerXFrameOptions))
}

func TestHostCheck(t *testing.T) {
	h := HostCheck("api.neurosphere.ai")(ok)

	w := serve(h, "GET", "/", func(r *http.Request) { r.Host = "API.neurosphere.ai:443" })
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(h, "GET", "/", func(r *http.Request) { r.Host = "evil.example" })
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(HostCheck("")(ok), "GET", "/", func(r *http.Request) { r.Host = "anything" })
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGlobalRateLimit(t *testing.T) {
	h := GlobalRateLimit(clientip.RealClientIP)(ok)

	for i := 0; i < globalRateLimitBurst; i++ {
		require.Equal(t, http.StatusNoContent, serve(h, "GET", "/", nil).Code, "request %d", i)
	}
	w := serve(h, "GET", "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Too many requests. Please slow down."}`, w.Body.String())

	// a different client has its own bucket
	w = serve(h, "GET", "/", func(r *http.Request) { r.RemoteAddr = "192.0.2.2:1" })
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDemoLoginRateLimit(t *testing.T) {
	h := DemoLoginRateLimit(clientip.RealClientIP)(ok)

	for i := 0; i < demoLoginBurst; i++ {
		require.Equal(t, http.StatusNoContent, serve(h, "POST", DemoLoginPath, nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(h, "POST", DemoLoginPath, nil).Code)

	// other routes are untouched
	assert.Equal(t, http.StatusNoContent, serve(h, "GET", "/api/session", nil).Code)
}

func TestIPLimiters_SweepsIdleEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPLimiters(rate.Limit(1), 1)
	l.now = func() time.Time { return now }

	l.get("a")
	l.get("b")
	assert.Equal(t, 2, l.size())

	now = now.Add(limiterTTL + limiterSweepInterval)
	l.get("c")
	assert.Equal(t, 1, l.size())
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS([]string{"http://localhost:3000"})(ok)

	w := serve(h, "OPTIONS", "/api/journal/entries", func(r *http.Request) {
		r.Header.Set("Origin", "http://localhost:3000")
		r.Header.Set("Access-Control-Request-Method", "POST")
	})
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = serve(h, "GET", "/", func(r *http.Request) { r.Header.Set("Origin", "https://evil.example") })
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type resolverFunc func(ctx context.Context, token string) (string, error)

func (f resolverFunc) Resolve(ctx context.Context, token string) (string, error) { return f(ctx, token) }

func TestRequireSession(t *testing.T) {
	resolver := resolverFunc(func(_ context.Context, token string) (string, error) {
		if token == "good" {
			return "u1", nil
		}
		return "", models.ErrUnauthorized
	})
	var seen string
	h := RequireSession(resolver, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserID(r.Context())
	}))

	w := serve(h, "GET", "/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Authentication required"}`, w.Body.String())

	serve(h, "GET", "/", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") })
	assert.Equal(t, "u1", seen)

	seen = ""
	serve(h, "GET", "/ws/events?token=good", nil)
	assert.Equal(t, "u1", seen)
}

func TestRequireSession_BackendFailureIsNotUnauthorized(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	resolver := resolverFunc(func(context.Context, string) (string, error) {
		return "", errors.New("session: resolve: dial tcp 127.0.0.1:6379: connection refused")
	})
	called := false
	h := RequireSession(resolver, zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := serve(h, "GET", "/api/journal/entries", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Something went wrong. Please try again."}`, w.Body.String())
	assert.False(t, called)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "/api/journal/entries", logs.All()[0].ContextMap()["path"])

	// a wrapped ErrUnauthorized is still a 401
	h = RequireSession(resolverFunc(func(context.Context, string) (string, error) {
		return "", fmt.Errorf("lookup: %w", models.ErrUnauthorized)
	}), zap.NewNop())(ok)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "GET", "/", nil).Code)
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/?token=q", nil)
	assert.Equal(t, "q", BearerToken(r))
	r.Header.Set("Authorization", "bearer  h ")
	assert.Equal(t, "h", BearerToken(r))
	r.Header.Set("Authorization", "Basic xyz")
	assert.Equal(t, "q", BearerToken(r))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := RequestLogger(zap.New(core), clientip.RealClientIP)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	serve(h, "GET", "/health", nil)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, "192.0.2.1", fields["client_ip"])
}
