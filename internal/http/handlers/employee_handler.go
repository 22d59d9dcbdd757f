package handlers

import (
	applog "github.com/Maicol0120/dulce-bendicion/internal/log"
	"github.com/Maicol0120/dulce-bendicion/internal/services"
	"github.com/Maicol0120/dulce-bendicion/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	Staff *services.StaffService
}

// POST /employees
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	username, okU := validate.Username(c.FormValue("username"))
	name, okN := validate.Name(c.FormValue("name"))
	if !okU || !okN {
		return c.Status(400).SendString("invalid username or name")
	}
	if err := h.Staff.Add(username, name); err != nil {
		applog.Error(c, "employees.add.fail", err, map[string]any{"username": username})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo guardar el empleado"})
	}
	applog.Audit(c, "employees.add", map[string]any{"username": username})
	return c.Redirect("/admin")
}

// POST /employees/:username/delete
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	username, ok := validate.Username(c.Params("username"))
	if !ok {
		return c.Status(400).SendString("invalid username")
	}
	if err := h.Staff.Remove(username); err != nil {
		applog.Error(c, "employees.delete.fail", err, map[string]any{"username": username})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo eliminar el empleado"})
	}
	applog.Audit(c, "employees.delete", map[string]any{"username": username})
	return c.Redirect("/admin")
}
