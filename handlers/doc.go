// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements a local stand-in for the Dish 4U backend.

It serves the same REST contract as the hosted API so the client packages
and the CLI can run end to end without network access.

# Handler Types

Each handler is a struct over a shared in-memory Store and the Config:

  - OrderHandler: order placement, lookup, listing and status changes
  - ItemHandler: multipart menu item upload
  - ContactHandler: contact messages

	orderHandler := handlers.NewOrderHandler(store, cfg)

# Orders

	POST  /order                    → CreateOrder (assigns _id, status pending)
	GET   /order/id/{orderId}       → GetOrder
	GET   /orders                   → ListOrders (admin)
	PATCH /orders/{orderId}/status  → UpdateStatus (admin)

A second order with the same orderId is rejected with 409.

# Admin Access

When cfg.AdminToken is set, admin routes require
"Authorization: Bearer <token>". Without a token they are open.
*/
package handlers
