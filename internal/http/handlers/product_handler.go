package handlers

import (
	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	applog "github.com/Maicol0120/dulce-bendicion/internal/log"
	"github.com/Maicol0120/dulce-bendicion/internal/services"
	"github.com/Maicol0120/dulce-bendicion/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Inv *services.InventoryService
}

// POST /products
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("missing product name")
	}
	category := c.FormValue("category")
	qty := validate.Qty(c.FormValue("qty"))
	min := validate.Qty(c.FormValue("min"))
	price := validate.Price(c.FormValue("price"))

	p, err := h.Inv.Add(name, category, qty, min, price)
	if err != nil {
		applog.Error(c, "products.add.fail", err, map[string]any{"name": name})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo guardar el producto"})
	}
	applog.Audit(c, "products.add", map[string]any{"id": p.ID, "name": p.Name})
	return c.Redirect(backTo(c))
}

// POST /products/:id
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}

	var patch domain.ProductPatch
	if v := c.FormValue("name"); v != "" {
		patch.Name = &v
	}
	if v := c.FormValue("category"); v != "" {
		patch.Category = &v
	}
	if v := c.FormValue("qty"); v != "" {
		n := validate.Qty(v)
		patch.Qty = &n
	}
	if v := c.FormValue("min"); v != "" {
		n := validate.Qty(v)
		patch.Min = &n
	}
	if v := c.FormValue("price"); v != "" {
		f := validate.Price(v)
		patch.Price = &f
	}

	p, found := h.Inv.Edit(id, patch)
	if !found {
		applog.Info(c, "products.edit.miss", map[string]any{"id": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	applog.Audit(c, "products.edit", map[string]any{"id": id, "name": p.Name})
	return c.Redirect(backTo(c))
}

// POST /products/:id/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	if !h.Inv.Delete(id) {
		applog.Info(c, "products.delete.miss", map[string]any{"id": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	applog.Audit(c, "products.delete", map[string]any{"id": id})
	return c.Redirect(backTo(c))
}

// POST /products/:id/increment — the employee dashboard's +1 action.
func (h *ProductHandler) Increment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	p, found := h.Inv.Increment(id)
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	applog.Audit(c, "products.increment", map[string]any{"id": id, "qty": p.Qty})
	return c.Redirect(backTo(c))
}

// backTo returns the dashboard the acting role came from.
func backTo(c *fiber.Ctx) string {
	if s := sessionFrom(c); s != nil && s.Role == domain.RoleEmployee {
		return "/panel"
	}
	return "/admin"
}
