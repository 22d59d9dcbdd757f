package handlers

import (
	applog "github.com/Maicol0120/dulce-bendicion/internal/log"
	"github.com/Maicol0120/dulce-bendicion/internal/services"
	"github.com/Maicol0120/dulce-bendicion/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler serves the standalone order/stock page. No role gate.
type OrderHandler struct {
	Orders *services.OrderService
}

// GET /orders
func (h *OrderHandler) Page(c *fiber.Ctx) error {
	return render(c, "orders", fiber.Map{
		"Orders": h.Orders.ListOrders(),
		"Stock":  h.Orders.ListStock(),
	})
}

// POST /orders
func (h *OrderHandler) AddOrder(c *fiber.Ctx) error {
	customer, okC := validate.Name(c.FormValue("customer"))
	product, okP := validate.Name(c.FormValue("product"))
	if !okC || !okP {
		return c.Status(400).SendString("missing customer or product")
	}
	qty := validate.Qty(c.FormValue("qty"))

	o, err := h.Orders.AddOrder(customer, product, qty)
	if err != nil {
		applog.Error(c, "orders.add.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo guardar el pedido"})
	}
	applog.Audit(c, "orders.add", map[string]any{"order_id": o.ID, "customer": customer})
	return c.Redirect("/orders")
}

// POST /stock
func (h *OrderHandler) AddStock(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("missing name")
	}
	stock := validate.Qty(c.FormValue("stock"))

	if err := h.Orders.AddStockItem(name, stock); err != nil {
		applog.Error(c, "stock.add.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo guardar el artículo"})
	}
	applog.Audit(c, "stock.add", map[string]any{"name": name, "stock": stock})
	return c.Redirect("/orders")
}
