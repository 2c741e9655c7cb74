package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkravets/userhub/internal/apperr"
)

// RequireUUIDParam rejects malformed resource ids before any storage call
// or ownership check runs.
func RequireUUIDParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(param)); err != nil {
			abort(c, apperr.NewValidation(param+" must be a valid UUID", map[string]string{param: "must be a valid UUID"}))
			return
		}
		c.Next()
	}
}
