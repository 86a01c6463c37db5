package response

import (
	"github.com/gin-gonic/gin"
)

// Err writes the uniform error body used across the API: {"error": msg}.
// Denial paths share a single message so failure causes are not
// distinguishable by clients.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// ErrDetails adds a field->message map for validation failures.
func ErrDetails(c *gin.Context, status int, msg string, details map[string]string) {
	if len(details) == 0 {
		Err(c, status, msg)
		return
	}
	c.JSON(status, gin.H{"error": msg, "details": details})
}

// AbortErr is Err for middleware: it stops the handler chain.
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
