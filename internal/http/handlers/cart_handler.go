package handlers

import (
	"llantera/internal/services"
	"llantera/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	productID := c.FormValue("productId")
	qty := validate.Qty(c.FormValue("qty"))

	if productID == "" {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Cart.Add(sid, productID, qty); err != nil {
		return c.Status(500).SendString("could not add to cart")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		return c.Status(500).SendString("could not load cart")
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}
