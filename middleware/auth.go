package middleware

import (
	"net/http"

	"staybnb-backend/auth"

	"github.com/gin-gonic/gin"
)

const TokenCookie = "token"

const claimsKey = "claims"

// RequireUser verifies the session cookie and aborts with 401 when the token
// is missing, tampered with, or expired. On success the caller's claims are
// stored on the context.
func RequireUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(TokenCookie)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalUser decodes the session cookie when present but lets anonymous
// requests through. A tampered token is still rejected.
func OptionalUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(TokenCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the verified claims set by RequireUser/OptionalUser,
// or nil for an anonymous request.
func CurrentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
