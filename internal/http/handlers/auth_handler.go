package handlers

import (
	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/log"
	"github.com/Maicol0120/dulce-bendicion/internal/services"
	"github.com/Maicol0120/dulce-bendicion/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username, ok := validate.Username(c.FormValue("username"))
	pass := c.FormValue("password")
	if !ok {
		log.Security(c, "auth.login.fail", map[string]any{"username": username, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Usuario o contraseña inválidos"})
	}

	sess, err := h.Auth.Login(username, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"username": username})
		return c.Status(401).Render("login", fiber.Map{"Err": "Usuario o contraseña inválidos"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"username": username, "role": sess.Role})
	if sess.Role == domain.RoleAdmin {
		return c.Redirect("/admin")
	}
	return c.Redirect("/panel")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_ = h.Auth.Logout()
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/login")
}
