package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/application"
	"github.com/mkravets/userhub/internal/interface/middleware"
	"github.com/mkravets/userhub/internal/session"
	"github.com/mkravets/userhub/pkg/helpers"
	"github.com/mkravets/userhub/pkg/response"
	"github.com/mkravets/userhub/pkg/validation"
)

type AuthHandler struct {
	Auth     *application.AuthService
	Sessions session.Store
	Cookies  *helpers.CookieManager
	Logger   *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, store session.Store, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Sessions: store, Cookies: cookies, Logger: logger}
}

type registerRequest struct {
	FullName  string `json:"fullName" binding:"required,min=1,max=200"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	BirthDate string `json:"birthDate" binding:"required,birthdate"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /auth/register
// Creates a USER account and establishes a fresh session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.NewValidation(validation.FirstError(err), validation.Details(err)))
		return
	}
	birth, err := validation.ParseBirthDate(req.BirthDate)
	if err != nil {
		_ = c.Error(apperr.NewValidation("birthDate "+err.Error(), map[string]string{"birthDate": err.Error()}))
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), application.RegisterInput{
		FullName:  req.FullName,
		BirthDate: birth,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !h.establishSession(c, u) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": u}, "registered")
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.NewValidation(validation.FirstError(err), validation.Details(err)))
		return
	}

	u, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !h.establishSession(c, u) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "login successful")
}

// Logout POST /auth/logout
// Destroys the server-side session; the id is unusable afterwards.
func (h *AuthHandler) Logout(c *gin.Context) {
	id, err := c.Cookie(helpers.SessionCookieName)
	if err == nil && id != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), id); err != nil {
			_ = c.Error(apperr.Wrap(apperr.Internal, "session destroy failed", err))
			return
		}
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logged out")
}

// Me GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Auth.GetByID(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if u == nil {
		// Session outlived the user row.
		_ = c.Error(apperr.ErrUserNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "current user")
}

func (h *AuthHandler) establishSession(c *gin.Context, u *application.User) bool {
	id, err := h.Sessions.Create(c.Request.Context(), session.Session{UserID: u.ID, Role: u.Role})
	if err != nil {
		_ = c.Error(apperr.Wrap(apperr.Internal, "session create failed", err))
		return false
	}
	h.Cookies.SetSession(c, id)
	return true
}
