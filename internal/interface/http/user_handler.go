package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/application"
	"github.com/mkravets/userhub/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// List GET /users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users}, "user list")
}

// Get GET /users/:id (self or admin)
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if u == nil {
		_ = c.Error(apperr.ErrUserNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "user")
}

// Block PATCH /users/:id/block (self or admin)
func (h *UserHandler) Block(c *gin.Context) {
	h.setActive(c, false, "user blocked")
}

// Unblock PATCH /users/:id/unblock (self or admin)
func (h *UserHandler) Unblock(c *gin.Context) {
	h.setActive(c, true, "user unblocked")
}

func (h *UserHandler) setActive(c *gin.Context, active bool, message string) {
	u, err := h.Svc.SetActive(c.Request.Context(), c.Param("id"), active)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, message)
}
