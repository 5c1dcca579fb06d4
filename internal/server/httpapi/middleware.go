package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photohub/photohub/internal/server/auth"
)

// userIDKey is the gin context key the middleware stores the authenticated
// subject under.
const userIDKey = "userID"

// requireAuth extracts and verifies the session token from the access-token
// cookie before any storage access. A missing cookie and an invalid token
// are distinct failures with distinct statuses.
func (s *Server) requireAuth(c *gin.Context) {
	token, err := c.Cookie(accessTokenCookie)
	if err != nil || token == "" {
		fail(c, http.StatusUnauthorized, "You are not authenticated")
		return
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		fail(c, http.StatusForbidden, "Invalid token")
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// loggedUser returns the subject stored by requireAuth.
func loggedUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}
