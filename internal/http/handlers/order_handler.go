package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"llantera/internal/domain"
	applog "llantera/internal/log"
	"llantera/internal/repos"
	"llantera/internal/services"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

func (h *OrderHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable behind TLS
		})
	}
	return sid
}

type orderInput struct {
	Items []domain.LineItem `json:"items"`
	Total int64             `json:"total"`
}

// PlaceAPI handles POST /api/v1/orders with {items, total}. Any failure
// rolls the transaction back and surfaces as one generic error; there is
// never a partially applied order.
func (h *OrderHandler) PlaceAPI(c *fiber.Ctx) error {
	var in orderInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	order, err := h.Order.Place(in.Items, in.Total)
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"error": err.Error()})
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrEmptyOrder) || errors.Is(err, services.ErrBadTotal) ||
			errors.Is(err, repos.ErrProductNotFound) || errors.Is(err, repos.ErrInsufficientStock) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": "error creating order"})
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": order.ID, "total": order.Total})
	return c.JSON(order)
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	cv, err := h.Cart.View(h.ensureSID(c))
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "checkout", fiber.Map{"Cart": cv})
}

// Place handles the storefront checkout form: the cart becomes the line
// items, then the same placement path as the API runs.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := h.ensureSID(c)

	order, err := h.Order.PlaceFromCart(sid)
	if err != nil {
		// a non-empty order means it committed and only the cart cleanup failed
		if order.ID != "" {
			applog.Error(c, "order.cart.clear.fail", err, map[string]any{"order_id": order.ID})
			return c.Redirect("/order/" + order.ID)
		}
		applog.Security(c, "order.place.fail", map[string]any{"sid": sid, "error": err.Error()})
		return c.Status(fiber.StatusBadRequest).SendString("Could not place order. Please review quantities and try again.")
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": order.ID, "total": order.Total})

	return c.Redirect("/order/" + order.ID)
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid := c.Params("id")
	if oid == "" {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	o, err := h.Repo.Get(oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	return render(c, "order", fiber.Map{"Order": o})
}
