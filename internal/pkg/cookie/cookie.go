package cookie

import (
	"net/http"
	"strings"
	"time"

	"lending-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// the refresh token is only ever read by the auth endpoints
	refreshPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	write(c, cfg, AccessTokenCookieName, accessToken, "/", accessTTL)
	write(c, cfg, RefreshTokenCookieName, refreshToken, refreshPath, refreshTTL)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, AccessTokenCookieName, "", "/", -1)
	write(c, cfg, RefreshTokenCookieName, "", refreshPath, -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

// A negative ttl expires the cookie immediately.
func write(c *gin.Context, cfg config.CookieConfig, name, value, path string, ttl time.Duration) {
	sameSite := parseSameSite(cfg.SameSite)
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   cfg.Domain,
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
	if ttl < 0 {
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
	} else {
		ck.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(c.Writer, ck)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
