// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the local Dish 4U stub backend.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(handlers.NewStore(), cfg)

# Endpoints

Health:

	GET /health

Customer (public):

	POST /api/order               - Place an order
	GET  /api/order/id/{orderId}  - Read one order
	POST /api/contact             - Send a contact message

Admin (Authorization: Bearer <ADMIN_TOKEN> when a token is configured):

	GET   /api/orders                   - List orders
	PATCH /api/orders/{orderId}/status  - Change order status
	POST  /api/add-item                 - Upload a menu item (multipart)

Routes use Go 1.22 method and path patterns. All API routes are wrapped
with middleware.WithLogging.
*/
package router
