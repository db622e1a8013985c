package handlers

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the caller address, preferring the first entry of
// X-Forwarded-For when the service runs behind a reverse proxy
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
