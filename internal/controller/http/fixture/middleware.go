package fixture

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// BasicAuth rejects requests whose credentials do not match. The service
// root stays open, as Redfish requires.
func BasicAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isServiceRoot(c.Request.URL.Path) {
			c.Next()

			return
		}

		u, p, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(u), []byte(username)) != 1 ||
			subtle.ConstantTimeCompare([]byte(p), []byte(password)) != 1 {
			UnauthorizedError(c)
			c.Abort()

			return
		}

		c.Next()
	}
}

func isServiceRoot(p string) bool {
	switch Key(p) {
	case "/redfish", "/redfish/v1":
		return true
	}

	return false
}
