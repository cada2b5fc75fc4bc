package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "authToken"

	// SessionCookieMaxAge matches the token lifetime.
	SessionCookieMaxAge = 3600
)

// CookieManager binds a session token to an HTTP cookie. The Secure flag
// is only set in production-like environments, so local frontends on
// plain HTTP keep working.
type CookieManager struct {
	secure bool
}

func NewCookieManager(env string) *CookieManager {
	return &CookieManager{secure: env == "production"}
}

// Attach sets the HTTP-only session cookie on the response.
func (m *CookieManager) Attach(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, SessionCookieMaxAge, "/", "", m.secure, true)
}

// Clear removes the session cookie immediately.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secure, true)
}
