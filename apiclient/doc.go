// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient talks to the Dish 4U REST backend.

# Endpoints

	POST  /order                    SubmitOrder
	GET   /order/id/{orderId}       GetOrder
	GET   /orders                   ListOrders   (admin)
	PATCH /orders/{orderId}/status  UpdateStatus (admin)
	POST  /add-item                 AddItem      (admin, multipart)
	POST  /contact                  SendContact

Admin calls take an auth.Session and send its token as
"Authorization: Bearer <token>". The server is the authority on roles.

# Errors

Calls never retry. Failures come back as one of:

  - *TransportError: the request never produced an HTTP response
  - *APIError: the server answered with a non-success status or body

Message picks the text to show a user:

	if err != nil {
		banner = apiclient.Message(err, "Order creation failed")
	}
*/
package apiclient
