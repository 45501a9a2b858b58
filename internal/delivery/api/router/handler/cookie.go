package handler

import (
	"net/http"
	"time"

	"recruit/config"

	"github.com/labstack/echo/v4"
)

const (
	RefreshCookieName = "refresh_token"
	refreshCookiePath = "/auth"
)

// refreshCookie writes the refresh token as an httpOnly cookie scoped to the
// auth routes.
type refreshCookie struct {
	secure bool
	domain string
	maxAge time.Duration
}

func newRefreshCookie(cfg *config.Config) refreshCookie {
	rc := refreshCookie{}
	if cfg.Cookie != nil {
		rc.secure = cfg.Cookie.Secure
		rc.domain = cfg.Cookie.Domain
	}
	if cfg.JWT != nil {
		rc.maxAge = cfg.JWT.RefreshTTL
	}

	return rc
}

func (rc refreshCookie) set(c echo.Context, token string) {
	c.SetCookie(rc.build(token, int(rc.maxAge.Seconds())))
}

func (rc refreshCookie) clear(c echo.Context) {
	c.SetCookie(rc.build("", -1))
}

func (rc refreshCookie) build(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     refreshCookiePath,
		Domain:   rc.domain,
		MaxAge:   maxAge,
		Secure:   rc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func readRefreshCookie(c echo.Context) string {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
