package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// fail writes the uniform error body {"message": ...} and aborts the chain.
// Every handler-local failure funnels through here.
func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// failInternal hides storage and other unexpected failures behind a generic
// message so internals never leak to clients.
func failInternal(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Internal Server Error")
}
