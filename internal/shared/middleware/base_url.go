package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const BaseURLKey = "base_url"

// BaseURL resolves the external scheme://host of the request (honouring reverse proxy headers)
// and stores it in the context for hypermedia link building
func BaseURL() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(BaseURLKey, ExternalBaseURL(c.Request))
		c.Next()
	}
}

// GetBaseURL returns the value set by BaseURL, computing it if the middleware did not run
func GetBaseURL(c *gin.Context) string {
	if v := c.GetString(BaseURLKey); v != "" {
		return v
	}
	return ExternalBaseURL(c.Request)
}

// ExternalBaseURL builds scheme://host as seen by the client
func ExternalBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	// X-Forwarded-* may hold a comma separated chain, the first entry is the client-facing one
	if proto := firstForwarded(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		scheme = strings.ToLower(proto)
	}

	host := r.Host
	if fwdHost := firstForwarded(r.Header.Get("X-Forwarded-Host")); fwdHost != "" {
		host = fwdHost
	}

	return scheme + "://" + host
}

func firstForwarded(v string) string {
	if v == "" {
		return ""
	}
	return strings.TrimSpace(strings.Split(v, ",")[0])
}
