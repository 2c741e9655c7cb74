package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/domain/entity"
	"github.com/mkravets/userhub/internal/session"
	"github.com/mkravets/userhub/pkg/helpers"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// abort records the error for the boundary translator and stops the chain.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// RequireAuth resolves the session cookie against the server-side store and
// injects the trust context (user id + role) into the Gin context.
func RequireAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || id == "" {
			abort(c, apperr.ErrUnauthenticated)
			return
		}
		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			abort(c, apperr.Wrap(apperr.Internal, "session lookup failed", err))
			return
		}
		if sess == nil {
			abort(c, apperr.ErrUnauthenticated)
			return
		}
		c.Set(CtxUserIDKey, sess.UserID)
		c.Set(CtxUserRoleKey, sess.Role)
		c.Next()
	}
}

// RequireRole gates a route on the caller's role. Must run after
// RequireAuth. A missing role is a defensive failure distinct from an
// insufficient one.
func RequireRole(allowed ...entity.Role) gin.HandlerFunc {
	set := make(map[entity.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role, ok := roleFrom(c)
		if !ok {
			abort(c, apperr.ErrRoleUndetermined)
			return
		}
		if _, ok := set[role]; !ok {
			abort(c, apperr.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin permits the request when the path parameter names the
// caller's own id, or the caller is an admin.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := roleFrom(c)
		if role == entity.RoleAdmin {
			c.Next()
			return
		}
		if c.Param(param) == c.GetString(CtxUserIDKey) {
			c.Next()
			return
		}
		abort(c, apperr.New(apperr.Forbidden, "you may only access your own account"))
	}
}

func roleFrom(c *gin.Context) (entity.Role, bool) {
	v, ok := c.Get(CtxUserRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(entity.Role)
	if !ok || !role.Valid() {
		return "", false
	}
	return role, true
}
