package handlers

import (
	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	applog "github.com/Maicol0120/dulce-bendicion/internal/log"
	"github.com/Maicol0120/dulce-bendicion/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a dashboard on the current session. A missing session or
// role mismatch is a hard redirect to the login page, not an in-view error.
func RequireRole(auth *services.AuthService, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := auth.Current()
		if sess == nil || sess.Role != role {
			if sess != nil {
				applog.Security(c, "access.denied", map[string]any{"username": sess.Username, "need": role})
			}
			return c.Redirect("/login")
		}
		c.Locals("session", sess)
		c.Locals("username", sess.Username)
		return c.Next()
	}
}

func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return RequireRole(auth, domain.RoleAdmin)
}

func RequireEmployee(auth *services.AuthService) fiber.Handler {
	return RequireRole(auth, domain.RoleEmployee)
}

func sessionFrom(c *fiber.Ctx) *domain.Session {
	s, _ := c.Locals("session").(*domain.Session)
	return s
}
