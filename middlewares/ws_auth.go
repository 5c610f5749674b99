package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware authenticates websocket upgrades. Browsers cannot set an
// Authorization header on a ws handshake, so the token rides in ?token=.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			c.Abort()
			return
		}

		userID, err := parseUserID(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
