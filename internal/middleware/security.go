package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/pkg/clientip"
	"golang.org/x/time/rate"
)

const (
	headerXContentTypeOptions     = "X-Content-Type-Options"
	headerXFrameOptions           = "X-Frame-Options"
	headerXXSSProtection          = "X-XSS-Protection"
	headerContentSecurityPolicy   = "Content-Security-Policy"
	headerStrictTransportSecurity = "Strict-Transport-Security"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerXContentTypeOptions, "nosniff")
		w.Header().Set(headerXFrameOptions, "DENY")
		w.Header().Set(headerXXSSProtection, "1; mode=block")
		w.Header().Set(headerContentSecurityPolicy, "default-src 'self'")
		w.Header().Set(headerStrictTransportSecurity, "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// HostCheck returns 403 when r.Host does not match allowedHost (e.g. api.neurosphere.ai).
// allowedHost should be the bare hostname without scheme or port.
func HostCheck(allowedHost string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowedHost == "" {
				next.ServeHTTP(w, r)
				return
			}
			reqHost := r.Host
			if host, _, err := net.SplitHostPort(reqHost); err == nil {
				reqHost = host
			}
			if !strings.EqualFold(strings.TrimSpace(reqHost), strings.TrimSpace(allowedHost)) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte("Forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

const (
	globalRateLimitRPS   = 1
	globalRateLimitBurst = 10

	demoLoginEvery = 5 * time.Second
	demoLoginBurst = 2

	limiterSweepInterval = 5 * time.Minute
	limiterTTL           = 30 * time.Minute
)

// DemoLoginPath is the session route limited by DemoLoginRateLimit.
const DemoLoginPath = "/api/session/demo"

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// ipLimiters keeps one token bucket per client IP. Idle buckets are swept on
// access once per sweep interval.
type ipLimiters struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

func newIPLimiters(limit rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		limit:   limit,
		burst:   burst,
		now:     time.Now,
		entries: make(map[string]*limiterEntry),
	}
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterSweepInterval {
		for k, e := range l.entries {
			if now.Sub(e.lastUse) > limiterTTL {
				delete(l.entries, k)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[ip] = e
	}
	e.lastUse = now
	return e.limiter
}

func (l *ipLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func rateLimit(l *ipLimiters, clientIP clientip.Func, applies func(*http.Request) bool, body string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if applies != nil && !applies(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !l.get(clientIP(r)).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(body))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GlobalRateLimit limits each IP to 1 req/s, burst 10. Returns 429 when exceeded.
func GlobalRateLimit(clientIP clientip.Func) func(http.Handler) http.Handler {
	return rateLimit(newIPLimiters(rate.Limit(globalRateLimitRPS), globalRateLimitBurst), clientIP, nil,
		`{"success":false,"message":"Too many requests. Please slow down."}`)
}

// DemoLoginRateLimit applies a stricter limit to demo session creation only. Use after GlobalRateLimit.
func DemoLoginRateLimit(clientIP clientip.Func) func(http.Handler) http.Handler {
	isLogin := func(r *http.Request) bool {
		return r.Method == http.MethodPost && r.URL.Path == DemoLoginPath
	}
	return rateLimit(newIPLimiters(rate.Every(demoLoginEvery), demoLoginBurst), clientIP, isLogin,
		`{"success":false,"message":"Too many login attempts. Please try again later."}`)
}

// ProductionSecurity returns middlewares for production: SecurityHeaders → HostCheck → GlobalRateLimit → DemoLoginRateLimit.
func ProductionSecurity(allowedHost string, clientIP clientip.Func) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		SecurityHeaders,
		HostCheck(allowedHost),
		GlobalRateLimit(clientIP),
		DemoLoginRateLimit(clientIP),
	}
}
