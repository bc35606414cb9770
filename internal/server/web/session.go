package web

import (
	"github.com/gin-gonic/gin"

	"github.com/ozyalhan/ozyblog/internal/server/auth"
)

const identityKey = "identity"

// SessionMiddleware resolves the session cookie into a SessionIdentity for
// every request. A missing, expired, or tampered cookie yields the anonymous
// identity rather than an error; pages decide for themselves whether they
// need a login.
func SessionMiddleware(secret []byte, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := auth.Anonymous

		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			if username, err := auth.GetUsernameFromToken(token, secret); err == nil {
				identity = auth.SessionIdentity{Username: username}
			}
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireLogin guards member-only pages. Anonymous visitors get flashed and
// sent to the login form.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identityFrom(c).Authenticated() {
			setFlash(c, "warning", "Please login for see this page.")
			redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) auth.SessionIdentity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(auth.SessionIdentity); ok {
			return identity
		}
	}
	return auth.Anonymous
}
