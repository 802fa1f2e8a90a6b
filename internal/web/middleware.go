package web

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rogerwa11/portfolio/internal/session"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session_id"
	requestIDKey  = "request_id"
	// one year
	sessionCookieMaxAge = 3600 * 24 * 365
)

// RequestIDMiddleware reads or assigns X-Request-Id and logs every request.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		log.Printf(
			"[req] id=%s method=%s path=%s status=%d latency=%s",
			rid,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

// SessionMiddleware makes sure every visitor carries a session id cookie.
func SessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || !session.ValidID(sid) {
			sid = session.NewID()
		}
		// sliding expiry
		c.SetCookie(sessionCookie, sid, sessionCookieMaxAge, "/", "", secure, true)
		c.Set(sessionKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
