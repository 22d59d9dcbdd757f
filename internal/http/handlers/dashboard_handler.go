package handlers

import (
	"github.com/Maicol0120/dulce-bendicion/internal/services"
	"github.com/Maicol0120/dulce-bendicion/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Dash *services.DashboardService
	Auth *services.AuthService
}

// GET /admin?q=
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	q := validate.Query(c.Query("q"))
	view := h.Dash.Admin(sessionFrom(c), q)
	return render(c, "dashboard_admin", fiber.Map{"View": view, "Q": q})
}

// GET /panel?q=
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	q := validate.Query(c.Query("q"))
	view := h.Dash.Employee(sessionFrom(c), q)
	return render(c, "dashboard_employee", fiber.Map{"View": view, "Q": q})
}
