package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/mkravets/userhub/internal/interface/http"
	"github.com/mkravets/userhub/internal/interface/middleware"
	"github.com/mkravets/userhub/internal/session"
)

// AuthModule wires the authentication routes.
// Public: POST /auth/register, POST /auth/login
// Protected: POST /auth/logout, GET /auth/me
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions session.Store
}

func NewAuthModule(h *handlers.AuthHandler, sessions session.Store) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("/auth")
	auth.Use(middleware.RequireAuth(m.Sessions))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
	}
}
