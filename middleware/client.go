package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/blogem/consulta-notas/clientctx"
)

// ClientInfo stores the caller's IP address and user agent in the request
// context. Proxy headers are only honoured when trustProxyHeaders is set.
func ClientInfo(trustProxyHeaders bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientctx.Client{
				IP:        getIPAddress(r, trustProxyHeaders),
				UserAgent: r.UserAgent(),
			}
			next.ServeHTTP(w, r.WithContext(clientctx.WithClient(r.Context(), client)))
		})
	}
}

// getIPAddress extracts the client IP, checking X-Forwarded-For and X-Real-IP
// first when proxy headers are trusted
func getIPAddress(r *http.Request, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		// Take first IP if multiple
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}

		if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
			if ip := net.ParseIP(strings.TrimSpace(realIP)); ip != nil {
				return ip.String()
			}
		}
	}

	// Fall back to RemoteAddr without its port
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
