package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "session_id"

type CookieManager struct {
	Domain string
	Secure bool
	MaxAge time.Duration
}

func NewCookie(domain string, secure bool, maxAge time.Duration) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure, MaxAge: maxAge}
}

// SetSession writes the session cookie. HttpOnly always; the id is opaque
// and the session state itself lives server-side.
func (m *CookieManager) SetSession(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, id, int(m.MaxAge.Seconds()), "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}
