package jwt

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie attached on login.
const CookieName = "token"

// CookieManager writes and clears the HTTP-only session cookie.
type CookieManager struct {
	secure   bool
	sameSite string
	ttl      time.Duration
}

// NewCookieManager configures the session cookie. sameSite accepts
// "strict", "lax" or "none"; anything else falls back to strict.
func NewCookieManager(secure bool, sameSite string, ttl time.Duration) *CookieManager {
	ss := fiber.CookieSameSiteStrictMode
	switch strings.ToLower(sameSite) {
	case "lax":
		ss = fiber.CookieSameSiteLaxMode
	case "none":
		ss = fiber.CookieSameSiteNoneMode
	}
	return &CookieManager{secure: secure, sameSite: ss, ttl: ttl}
}

func (m *CookieManager) Set(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
		Expires:  time.Now().Add(m.ttl),
	})
}

// Clear expires the session cookie; clearing with no active session is fine.
func (m *CookieManager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
		Expires:  time.Now().Add(-time.Hour),
	})
}
