package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/life-promo/studio-site/internal/session"
	"github.com/life-promo/studio-site/internal/web/handler"
	adminlogin "github.com/life-promo/studio-site/internal/web/handler/admin/login"
)

// adminPathPrefix guards every admin page except the login form itself.
const adminPathPrefix = "/admin"

// AuthMiddleware is a Fiber middleware that guards the admin pages. Public
// pages and static files pass through untouched.
func AuthMiddleware(deps *handler.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		originalURL := strings.ToLower(c.OriginalURL())

		if !strings.HasPrefix(originalURL, adminPathPrefix) {
			return c.Next()
		}

		isLoginPage := IsLoginPage(c)

		// the persisted flag is the source of truth; the cookie must carry
		// the token of the browser that completed the login
		sessActive := deps.Session.IsActive() && deps.Session.Matches(c.Cookies(session.CookieName))

		if !sessActive && !isLoginPage {
			return c.Redirect(adminlogin.Path)
		}

		if sessActive && isLoginPage {
			return c.Redirect("/admin/content")
		}

		return c.Next()
	}
}

// IsLoginPage checks if the current request is for the admin login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, adminlogin.Path)
}
