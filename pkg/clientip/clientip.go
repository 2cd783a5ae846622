// Package clientip resolves the client address used for rate limiting and logs.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Func extracts a client IP from a request.
type Func func(r *http.Request) string

// RealClientIP returns the client IP from r.RemoteAddr only (no proxy headers).
// Use when traffic reaches the app directly.
func RealClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}

// Forwarded returns the left-most valid address in X-Forwarded-For, then
// X-Real-IP, then RemoteAddr. Only use behind a proxy that overwrites these
// headers; otherwise clients can pick their own rate-limit bucket.
func Forwarded(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}
	return RealClientIP(r)
}

// New picks Forwarded when proxy headers are trusted and RealClientIP otherwise.
func New(trustProxy bool) Func {
	if trustProxy {
		return Forwarded
	}
	return RealClientIP
}
