// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cart

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/dish4u/models"
)

var (
	ErrInvalidItem  = errors.New("invalid cart item")
	ErrItemNotFound = errors.New("item not in cart")
)

// Cart holds the selected menu items. It is shared by every view, so all
// methods are safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add puts an item in the cart. Adding an id that is already present
// increases its quantity instead of adding a second line.
func (c *Cart) Add(item models.CartItem) error {
	if item.ID == "" || item.UnitPrice < 0 || item.Quantity <= 0 {
		return ErrInvalidItem
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.items = append(c.items, item)
	slog.Debug("cart item added", "item_id", item.ID, "quantity", item.Quantity)
	return nil
}

// SetQuantity changes the quantity of a line. A quantity <= 0 removes it.
func (c *Cart) SetQuantity(id string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// Remove deletes a line from the cart.
func (c *Cart) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Settle takes ordered lines out of the cart after a successful order.
// Each matching line loses the ordered quantity and is dropped at zero, so
// lines added or topped up while the order was in flight stay in the cart.
func (c *Cart) Settle(ordered []models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range ordered {
		for i := range c.items {
			if c.items[i].ID == o.ID {
				c.items[i].Quantity -= o.Quantity
				break
			}
		}
	}

	kept := c.items[:0]
	for _, item := range c.items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() float64 {
	return Subtotal(c.Items())
}

// Subtotal sums price x quantity in decimal, so 0.1 + 0.2 is 0.3.
// Zero prices or quantities add nothing.
func Subtotal(items []models.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}
