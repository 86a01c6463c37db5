package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hybridge/blog-api/internal/application"
	handlers "github.com/hybridge/blog-api/internal/interface/http"
	"github.com/hybridge/blog-api/internal/interface/middleware"
)

// AuthModule wires the authentication surface.
// Public: POST /signup, POST /login
// Protected: GET /profile
type AuthModule struct {
	Handler *handlers.AuthHandler
	Svc     *application.AuthService
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, svc *application.AuthService, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Svc: svc, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Svc))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
