package handlers

import (
	"strings"

	applog "llantera/internal/log"
	"llantera/internal/repos"
	"llantera/internal/services"
	"llantera/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Prods  *repos.ProductRepo
	Inv    *services.InventoryService
	Orders *repos.OrderRepo
	Stock  *repos.StockRepo
}

// GET /admin — product table, optionally narrowed by a free-text filter.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Prods.All()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_products", fiber.Map{"Products": products, "Count": len(products)})
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	ords, err := h.Orders.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": ords})
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.FormValue("status")
	if id == "" || status == "" {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin/orders")
}

// GET /admin/stock — recent movement log plus the adjust form.
func (h *AdminHandler) StockPage(c *fiber.Ctx) error {
	rows, err := h.Stock.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.stock.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load stock movements"})
	}
	return render(c, "admin_stock", fiber.Map{"Rows": rows})
}

// POST /admin/stock
func (h *AdminHandler) AdjustStock(c *fiber.Ctx) error {
	pid, okID := validate.ID(c.FormValue("product_id"))
	qty, okQty := validate.Stock(c.FormValue("stock"))
	reason := strings.TrimSpace(c.FormValue("reason"))
	if !okID || !okQty {
		return c.Status(400).SendString("invalid input")
	}
	if reason == "" {
		reason = "Manual adjustment"
	}
	if err := h.Inv.Adjust(pid, qty, reason); err != nil {
		applog.Error(c, "admin.stock.adjust.fail", err, map[string]any{"product": pid, "stock": qty})
		return c.Status(400).SendString("could not adjust stock")
	}
	applog.Audit(c, "admin.stock.adjust", map[string]any{"product": pid, "stock": qty, "reason": reason})
	return c.Redirect("/admin/stock")
}

// GET /admin/import
func (h *AdminHandler) ImportForm(c *fiber.Ctx) error {
	return render(c, "admin_import", fiber.Map{})
}

// POST /admin/import — multipart price-list upload.
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	vt, ok := validate.VehicleType(c.FormValue("vehicleType"))
	if !ok {
		return c.Status(400).SendString("invalid vehicle type")
	}
	fh, err := c.FormFile("pricelist")
	if err != nil {
		return c.Status(400).SendString("missing price list file")
	}
	f, err := fh.Open()
	if err != nil {
		applog.Error(c, "admin.import.open.fail", err, nil)
		return c.Status(400).SendString("could not read price list")
	}
	defer f.Close()

	stats, err := h.Inv.Import(f, vt)
	if err != nil {
		applog.Error(c, "admin.import.fail", err, map[string]any{"imported": stats.Imported})
		return c.Status(400).SendString("import failed")
	}
	applog.Audit(c, "admin.import", map[string]any{
		"lines": stats.Lines, "imported": stats.Imported, "skipped": stats.Skipped, "vehicle_type": vt,
	})
	return render(c, "admin_import", fiber.Map{"Stats": stats})
}
