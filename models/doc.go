// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire and display types shared by the Dish 4U
client packages.

# Client-held Types

  - CartItem: _id, itemname, price, quantity
  - DeliveryForm: firstName, lastName, email, address, phone

# Wire Types

Payloads exchanged with the ordering API:

  - Order: POST /order payload and the server record (_id, createdAt, status)
  - OrderItem: itemId, itemName, price, quantity
  - UpdateStatusRequest: status
  - ContactRequest: name, email, subject, message
  - SubmitOrderResponse, GetOrderResponse: success, message, order
  - ListOrdersResponse: orders
  - MessageResponse, ErrorResponse: error bodies

# Local Types

  - PendingOrder: local copy of a just-submitted order
  - OrderView: flattened confirmation display model
  - DashboardStats: order count, item count, revenue

# Constants

Order statuses:

	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusOnTheWay  = "on-the-way"
	StatusDelivered = "delivered"

Roles:

	RoleCustomer = "customer"
	RoleAdmin    = "admin"

# Validation Errors

ValidationError names the offending form field. Operations return it before
any network call is made.
*/
package models
