package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP resolves the originating client address, looking through the
// reverse proxy headers set by the hosting layer before falling back to
// the socket address.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", extractIPAddress(c.Request))
		c.Next()
	}
}

func extractIPAddress(r *http.Request) string {
	// X-Real-IP is set by the reverse proxy when present
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	// X-Forwarded-For may list several hops; the first is the client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
