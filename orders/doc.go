// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package orders builds order payloads from the cart and delivery form.

# Building

	b := orders.NewBuilder(orders.DefaultDeliveryFee)
	order, pending, err := b.Build(cart.Items(), form)

Build fails with ErrEmptyCart for an empty cart and with a
*models.ValidationError when any delivery field is blank. Nothing is sent
in either case.

# Totals

	subtotal = Σ price × quantity
	total    = subtotal + deliveryFee

# Order IDs

	ORD<unix millis><last 4 phone digits><3-digit random>
	ORD17180000000001234042  (phone ...1234, suffix 042)

Every Build call generates a new ID, including a resubmission after a
failed attempt. IDs are not guaranteed unique: two builds in the same
millisecond for the same phone collide with probability 1/1000.
*/
package orders
