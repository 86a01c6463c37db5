package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/hybridge/blog-api/internal/interface/http"
)

// AuthorModule registers the author CRUD routes.
type AuthorModule struct {
	Handler *handlers.AuthorHandler
}

func NewAuthorModule(h *handlers.AuthorHandler) *AuthorModule {
	return &AuthorModule{Handler: h}
}

func (m *AuthorModule) Register(rg *gin.RouterGroup) {
	rg.POST("/authors", m.Handler.Create)
	rg.GET("/authors", m.Handler.List)
	rg.GET("/authors/:id", m.Handler.Get)
	rg.PATCH("/authors/:id", m.Handler.Patch)
	rg.DELETE("/authors/:id", m.Handler.Delete)
}
