package router

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hybridge/blog-api/internal/application"
	pginfra "github.com/hybridge/blog-api/internal/infrastructure/postgres"
	handlers "github.com/hybridge/blog-api/internal/interface/http"
	"github.com/hybridge/blog-api/internal/router/modules"
	"github.com/hybridge/blog-api/pkg/helpers"
)

// Deps carries the process-wide singletons, constructed once in main and
// passed down explicitly rather than referenced as ambient state.
type Deps struct {
	DB     pginfra.Querier
	Redis  *redis.Client
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

// InitModules wires repositories, services, and handlers and registers all
// feature modules with the registry.
func InitModules(r *Registry, d Deps) {
	userRepo := pginfra.NewUserRepository(d.DB)
	authorRepo := pginfra.NewAuthorRepository(d.DB)
	postRepo := pginfra.NewPostRepository(d.DB)

	authSvc := application.NewAuthService(userRepo, helpers.NewBcryptHasher(), d.JWT, d.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, d.Logger), authSvc, d.Redis))
	r.Add(modules.NewAuthorModule(handlers.NewAuthorHandler(authorRepo, d.Logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postRepo, d.Logger)))
}
