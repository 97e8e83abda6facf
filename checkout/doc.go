// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package checkout places the cart as an order.

Service.Submit validates the delivery form, builds a fresh order, posts it
once and, on success, takes the ordered lines out of the cart and writes the pending order slot.
It returns a Handoff for the confirmation view:

	svc := checkout.NewService(c, orders.NewBuilder(cfg.DeliveryFee), client, store)
	h, err := svc.Submit(ctx, form)
	if err != nil {
		fmt.Println(checkout.UserMessage(err))
		return
	}
	view, err := confirmation.NewFetcher(client, store).FetchOrder(ctx, &h)

On failure the cart and the slot are left as they were. A retry generates
a new order ID. A Submit that overlaps a running one fails with
ErrInFlight.
*/
package checkout
