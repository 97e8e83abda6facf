// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the dish4u command, a terminal client for the Dish 4U
restaurant ordering site.

Dish 4U customers build a cart, place an order for delivery and look the
order up afterwards. Admins list orders, move them through
pending → preparing → on-the-way → delivered, and add menu items.

# Commands

	dish4u checkout -item 665f1c2ab1d2:Paneer Tikka:120:2 \
		-first Asha -last Rao -email asha@example.com \
		-address "12 MG Road" -phone "+91 98765 43210"
	dish4u confirm [-order-id ORD...]
	dish4u contact -name Asha -email asha@example.com -subject Hi -message Hello
	dish4u admin login -token TOKEN
	dish4u admin orders
	dish4u admin status ORD... preparing
	dish4u admin add-item -name Dosa -description Crispy -price 80 -category South -image dosa.png
	dish4u admin logout
	dish4u stub-server -p 3318

Exit status is 1 on any failure, with the user-facing message on stderr.

# Local State

The last placed order and the admin role survive between invocations in a
small key/value table (SQLite file dish4u.db by default, or PostgreSQL with
-t postgres). confirm without -order-id reads the last placed order from it.

# Development Backend

stub-server runs an in-memory implementation of the backend API:

	dish4u stub-server -p 3318 &
	dish4u -api http://localhost:3318/api checkout ...

# Architecture

  - cart, orders: cart contents and order construction
  - checkout, confirmation: order placement and read-back
  - admin, contact: admin views and the contact form
  - apiclient: REST client for the backend
  - auth: sessions and bearer tokens
  - opstate: per-operation state tracking
  - db: local state slots
  - handlers, router: stub backend
  - middleware: HTTP logging and JSON helpers
  - models: wire and view types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
