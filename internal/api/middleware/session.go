package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velstore/storefront/internal/cart"
)

// SessionCookie names the cookie carrying the cart session id.
const SessionCookie = "cart_session"

const cartContextKey = "cart"

const sessionMaxAge = 30 * 24 * 60 * 60 // seconds

// Session attaches the session's cart to the request context, issuing
// a fresh session cookie when the request carries none (or an invalid
// one).
func Session(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || !validSessionID(id) {
			id = cart.NewSessionID()
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(cartContextKey, sessions.Get(id))
		c.Next()
	}
}

// GetCartFromContext retrieves the session cart set by Session.
func GetCartFromContext(c *gin.Context) (*cart.Cart, bool) {
	v, ok := c.Get(cartContextKey)
	if !ok {
		return nil, false
	}
	sessionCart, ok := v.(*cart.Cart)
	return sessionCart, ok
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
