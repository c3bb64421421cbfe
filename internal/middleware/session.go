package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookieName carries the browser session id
	SessionCookieName = "repurposer_session"
	// SessionHeader lets API clients pin a session without cookies
	SessionHeader = "X-Session-ID"
	// SessionContextKey is where the id is stored on the gin context
	SessionContextKey = "session_id"
)

// Session assigns every client a session id and stores it in the context
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(SessionHeader); validSessionID(id) {
			c.Set(SessionContextKey, id)
			c.Next()
			return
		}

		id, err := c.Cookie(SessionCookieName)
		if err != nil || !validSessionID(id) {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, id, 0, "/", "", false, true)
		}

		c.Set(SessionContextKey, id)
		c.Next()
	}
}

// SessionID returns the id set by Session
func SessionID(c *gin.Context) string {
	return c.GetString(SessionContextKey)
}

func validSessionID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
