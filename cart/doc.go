// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cart holds the in-memory shopping cart shared across views.

	c := cart.New()
	c.Add(models.CartItem{ID: "a", Name: "Paneer Tikka", UnitPrice: 100, Quantity: 2})
	c.SetQuantity("a", 3)
	total := c.Subtotal()

Adding an existing id increases its quantity. Setting a quantity of zero or
less removes the line, so every line in a cart has a positive quantity.
The checkout service settles the ordered lines only after the server
accepts an order; anything added while the order was in flight stays.
*/
package cart
