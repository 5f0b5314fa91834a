// README: Firebase bearer-token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wander/internal/infra"
)

const (
	ctxKeyUID   = "auth_uid"
	ctxKeyEmail = "auth_email"
)

// Auth verifies the Authorization: Bearer <idToken> header against Firebase
// and stores the caller's uid and email on the request context. Trips are
// owned by email, so a token without an email claim is rejected.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortUnauthorized(c, "malformed authorization header")
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(raw))
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			abortUnauthorized(c, "token has no email claim")
			return
		}

		c.Set(ctxKeyUID, token.UID)
		c.Set(ctxKeyEmail, email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// CallerUID returns the authenticated caller's Firebase uid, or "".
func CallerUID(c *gin.Context) string {
	return c.GetString(ctxKeyUID)
}

// CallerEmail returns the authenticated caller's email, or "".
func CallerEmail(c *gin.Context) string {
	return c.GetString(ctxKeyEmail)
}
