package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hybridge/blog-api/internal/application"
	"github.com/hybridge/blog-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// BearerAuth extracts the bearer token from the Authorization header,
// verifies it, and resolves it to a live user. On success the user's id
// and email are injected into the Gin context; every failure is a 401,
// never a server error.
func BearerAuth(svc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortErr(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		u, err := svc.Authorize(c.Request.Context(), token)
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserEmailKey, u.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
