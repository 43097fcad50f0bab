// Package middleware holds the HTTP middleware shared by the REST and
// WebSocket routes.
package middleware

import (
	"net"
	"net/http"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// clientIP returns the host part of RemoteAddr. Proxy headers are resolved
// earlier by chi's RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
