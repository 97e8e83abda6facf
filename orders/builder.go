// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package orders

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/dish4u/cart"
	"github.com/danielhkuo/dish4u/models"
)

// DefaultDeliveryFee is the flat fee added to every order.
const DefaultDeliveryFee = 50.0

// MissingFieldsMessage is shown when any delivery field is blank.
const MissingFieldsMessage = "Please fill in all delivery fields."

var ErrEmptyCart = errors.New("cart is empty")

type Builder struct {
	DeliveryFee float64

	// Now and RandIntN are replaceable for tests.
	Now      func() time.Time
	RandIntN func(n int) int
}

func NewBuilder(deliveryFee float64) *Builder {
	return &Builder{
		DeliveryFee: deliveryFee,
		Now:         time.Now,
		RandIntN:    rand.IntN,
	}
}

// Build turns the cart lines and delivery form into the order payload and
// the local pending copy. A fresh order ID is generated on every call.
func (b *Builder) Build(items []models.CartItem, form models.DeliveryForm) (models.Order, models.PendingOrder, error) {
	if len(items) == 0 {
		return models.Order{}, models.PendingOrder{}, ErrEmptyCart
	}
	if err := ValidateDelivery(form); err != nil {
		return models.Order{}, models.PendingOrder{}, err
	}

	now := b.Now()
	orderID := GenerateOrderID(now, form.Phone, b.RandIntN(1000))
	subtotal, total := Totals(items, b.DeliveryFee)

	order := models.Order{
		OrderID:     orderID,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Address:     form.Address,
		Phone:       form.Phone,
		Items:       make([]models.OrderItem, 0, len(items)),
		Subtotal:    subtotal,
		DeliveryFee: b.DeliveryFee,
		Total:       total,
	}

	pending := models.PendingOrder{
		OrderID:     orderID,
		Items:       make([]models.PendingOrderItem, 0, len(items)),
		Subtotal:    subtotal,
		DeliveryFee: b.DeliveryFee,
		Total:       total,
		UserData:    form,
		OrderDate:   now.UTC(),
		Status:      models.StatusPending,
	}

	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:   item.ID,
			ItemName: item.Name,
			Price:    item.UnitPrice,
			Quantity: item.Quantity,
		})
		pending.Items = append(pending.Items, models.PendingOrderItem{
			CartItem:   item,
			ItemNumber: "ITEM" + lastN(item.ID, 4),
		})
	}

	return order, pending, nil
}

// Totals returns the item subtotal and the subtotal plus delivery fee.
func Totals(items []models.CartItem, deliveryFee float64) (subtotal, total float64) {
	subtotal = cart.Subtotal(items)
	total = decimal.NewFromFloat(subtotal).Add(decimal.NewFromFloat(deliveryFee)).InexactFloat64()
	return subtotal, total
}

// GenerateOrderID formats ORD<unix millis><last 4 phone digits><3-digit suffix>.
// Uniqueness rests on the clock and the random suffix only; two builds in
// the same millisecond for the same phone collide one time in a thousand.
func GenerateOrderID(now time.Time, phone string, suffix int) string {
	if suffix < 0 {
		suffix = -suffix
	}
	return fmt.Sprintf("ORD%d%s%03d", now.UnixMilli(), PhoneLast4(phone), suffix%1000)
}

// PhoneLast4 returns the last four digits of phone, left-padded with zeros.
// Non-digit characters are ignored; a phone without digits gives "0000".
func PhoneLast4(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := lastN(digits.String(), 4)
	return strings.Repeat("0", 4-len(d)) + d
}

// ValidateDelivery requires every delivery field to be non-blank.
func ValidateDelivery(form models.DeliveryForm) error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"email", form.Email},
		{"address", form.Address},
		{"phone", form.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &models.ValidationError{Field: f.name, Message: MissingFieldsMessage}
		}
	}
	return nil
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
