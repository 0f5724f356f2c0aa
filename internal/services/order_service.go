package services

import (
	"errors"
	"fmt"

	"llantera/internal/domain"
	"llantera/internal/repos"
)

var (
	ErrEmptyOrder = errors.New("order has no items")
	ErrBadTotal   = errors.New("total does not match line items")
)

type OrderService struct {
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo
}

func NewOrderService(carts *repos.CartRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Carts: carts, Orders: orders}
}

// Place validates the line items and runs the placement transaction.
// Validation failures reject the request before any store mutation.
func (s *OrderService) Place(items []domain.LineItem, total int64) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}
	var sum int64
	for _, it := range items {
		if it.ProductID == "" {
			return domain.Order{}, fmt.Errorf("line item missing product id")
		}
		if it.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("invalid quantity %d for %s", it.Quantity, it.ProductID)
		}
		if it.Price < 0 {
			return domain.Order{}, fmt.Errorf("invalid price %d for %s", it.Price, it.ProductID)
		}
		sum += int64(it.Quantity) * it.Price
	}
	if sum != total {
		return domain.Order{}, ErrBadTotal
	}
	return s.Orders.Place(items, total)
}

// PlaceFromCart builds line items from the session cart (with the price
// snapshots taken at add time), places the order and clears the cart.
// When clearing fails the placed order is returned together with the
// error; the caller decides whether a stale cart is worth surfacing.
func (s *OrderService) PlaceFromCart(sessionID string) (domain.Order, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return domain.Order{}, err
	}
	cartItems, err := s.Carts.Items(cartID)
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.LineItem, 0, len(cartItems))
	var total int64
	for _, it := range cartItems {
		items = append(items, domain.LineItem{ProductID: it.ProductID, Quantity: it.Qty, Price: it.Price})
		total += int64(it.Qty) * it.Price
	}

	order, err := s.Place(items, total)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.Carts.Clear(cartID); err != nil {
		return order, fmt.Errorf("clearing cart after order %s: %w", order.ID, err)
	}
	return order, nil
}
