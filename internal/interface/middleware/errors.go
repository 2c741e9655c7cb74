package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/pkg/response"
)

// ErrorHandler is the single boundary translator: handlers and middleware
// attach classified errors via c.Error, and this middleware maps kind to
// status, renders the uniform envelope, and logs the failure exactly once.
// Panics are recovered into Internal errors.
func ErrorHandler(logger *logrus.Logger, env string) gin.HandlerFunc {
	diagnostics := env != "production"
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				e := apperr.Wrap(apperr.Internal, "internal server error", panicErr(r))
				render(c, logger, e, string(debug.Stack()), diagnostics)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		e := apperr.From(c.Errors.Last().Err)
		render(c, logger, e, "", diagnostics)
	}
}

func render(c *gin.Context, logger *logrus.Logger, e *apperr.Error, stack string, diagnostics bool) {
	fields := logrus.Fields{
		"status":     e.Status(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString("request_id"),
	}
	if uid := c.GetString(CtxUserIDKey); uid != "" {
		fields["user_id"] = uid
	}
	entry := logger.WithFields(fields)
	if e.Err != nil {
		entry = entry.WithError(e.Err)
	}
	if e.Operational() {
		entry.Warn(e.Message)
	} else {
		entry.Error(e.Message)
	}

	detail := e.Details
	// Unexpected failures expose their cause only in diagnostic mode; the
	// caller otherwise sees the generic message alone.
	if !e.Operational() && diagnostics {
		d := gin.H{"error": e.Error()}
		if stack != "" {
			d["stack"] = stack
		}
		detail = d
	}

	if c.Writer.Written() {
		return
	}
	c.Abort()
	response.Fail(c, e.Status(), e.Message, detail)
}

func panicErr(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
