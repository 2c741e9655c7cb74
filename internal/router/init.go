package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/userhub/config"
	"github.com/mkravets/userhub/internal/application"
	pginfra "github.com/mkravets/userhub/internal/infrastructure/postgres"
	handlers "github.com/mkravets/userhub/internal/interface/http"
	"github.com/mkravets/userhub/internal/router/modules"
	"github.com/mkravets/userhub/internal/session"
	"github.com/mkravets/userhub/pkg/helpers"
)

// Deps carries the process-level dependencies owned by the entry point.
// Everything below is constructed from them explicitly; there is no shared
// singleton state.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
}

// InitModules wires repositories, services and handlers and registers all
// feature modules with the router registry.
func InitModules(r *Registry, d Deps) {
	repo := pginfra.NewUserRepository(d.Pool)
	sessions := session.NewRedisStore(d.Redis, d.Cfg.SessionTTL)
	cookies := helpers.NewCookie(d.Cfg.CookieDomain, d.Cfg.CookieSecure, d.Cfg.SessionTTL)

	authSvc := application.NewAuthService(repo, d.Logger)
	userSvc := application.NewUserService(repo, d.Logger)

	authHandler := handlers.NewAuthHandler(authSvc, sessions, cookies, d.Logger)
	userHandler := handlers.NewUserHandler(userSvc, d.Logger)

	r.Add(modules.NewAuthModule(authHandler, sessions))
	r.Add(modules.NewUserModule(userHandler, sessions))
}
