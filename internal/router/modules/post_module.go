package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/hybridge/blog-api/internal/interface/http"
)

// PostModule registers the post CRUD routes.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.POST("/posts", m.Handler.Create)
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/:id", m.Handler.Get)
	rg.PATCH("/posts/:id", m.Handler.Patch)
	rg.DELETE("/posts/:id", m.Handler.Delete)
}
