package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/mkravets/userhub/internal/domain/entity"
	handlers "github.com/mkravets/userhub/internal/interface/http"
	"github.com/mkravets/userhub/internal/interface/middleware"
	"github.com/mkravets/userhub/internal/session"
)

// UserModule wires the user-management routes.
// GET /users is admin only; the per-id routes follow the self-or-admin rule.
type UserModule struct {
	Handler  *handlers.UserHandler
	Sessions session.Store
}

func NewUserModule(h *handlers.UserHandler, sessions session.Store) *UserModule {
	return &UserModule{Handler: h, Sessions: sessions}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireAuth(m.Sessions))

	users.GET("", middleware.RequireRole(entity.RoleAdmin), m.Handler.List)

	one := users.Group("/:id")
	one.Use(middleware.RequireUUIDParam("id"), middleware.RequireSelfOrAdmin("id"))
	{
		one.GET("", m.Handler.Get)
		one.PATCH("/block", m.Handler.Block)
		one.PATCH("/unblock", m.Handler.Unblock)
	}
}
