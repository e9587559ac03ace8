// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the authority gate guarding the admin API surface.
// The public side of the API is deliberately unauthenticated (case ids are
// the reporters' credentials); school-authority routes instead require a
// shared API key presented via X-API-Key or a bearer token.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderAPIKey is the header carrying the authority API key.
	HeaderAPIKey = "X-API-Key"

	// ctxKeyAuthority marks a request that passed the authority gate.
	ctxKeyAuthority = "authority"
)

// IsAuthority reports whether the request passed the authority gate.
func IsAuthority(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyAuthority)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// AuthorityGate returns a Gin middleware that rejects requests not carrying
// the configured API key. The comparison is constant-time. An empty
// configured key fails closed: every request is rejected, so a missing
// ADMIN_API_KEY can never expose the admin surface.
//
// Accepted forms:
//
//	X-API-Key: <key>
//	Authorization: Bearer <key>
func AuthorityGate(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := strings.TrimSpace(c.GetHeader(HeaderAPIKey))
		if presented == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				presented = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			}
		}

		if apiKey == "" || presented == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "valid API key required",
			})
			return
		}

		c.Set(ctxKeyAuthority, true)
		c.Next()
	}
}
