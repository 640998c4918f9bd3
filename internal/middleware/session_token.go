package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// sessionToken reads the session token from the Authorization header first
// and falls back to the session cookie set by the wall page
func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		return ""
	}

	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}
