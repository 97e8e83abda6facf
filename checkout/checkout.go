// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package checkout

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/dish4u/apiclient"
	"github.com/danielhkuo/dish4u/cart"
	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/opstate"
	"github.com/danielhkuo/dish4u/orders"
)

// FailureFallback is shown when the server gives no reason.
const FailureFallback = "Order creation failed"

var ErrInFlight = errors.New("order submission already in progress")

// OrderSubmitter is the part of the API client checkout needs.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order models.Order) (*models.Order, error)
}

// PendingStore keeps the last placed order.
type PendingStore interface {
	SavePendingOrder(ctx context.Context, pending models.PendingOrder) error
}

// Handoff carries a placed order to the confirmation view.
type Handoff struct {
	OrderID string
	Pending models.PendingOrder
}

type Service struct {
	cart    *cart.Cart
	builder *orders.Builder
	client  OrderSubmitter
	store   PendingStore
	tracker opstate.Tracker[Handoff]
}

func NewService(c *cart.Cart, builder *orders.Builder, client OrderSubmitter, store PendingStore) *Service {
	return &Service{
		cart:    c,
		builder: builder,
		client:  client,
		store:   store,
	}
}

// Submit places the current cart as an order.
func (s *Service) Submit(ctx context.Context, form models.DeliveryForm) (Handoff, error) {
	if err := s.tracker.Begin(); err != nil {
		return Handoff{}, ErrInFlight
	}

	items := s.cart.Items()
	order, pending, err := s.builder.Build(items, form)
	if err != nil {
		s.tracker.Fail(err)
		return Handoff{}, err
	}

	s.tracker.Send()
	created, err := s.client.SubmitOrder(ctx, order)
	if err != nil {
		slog.Warn("order submission failed", "order_id", order.OrderID, "error", err)
		s.tracker.Fail(err)
		return Handoff{}, err
	}

	pending.BackendOrderID = created.BackendID

	// The order exists on the server now; a slot failure must not invite a resubmit
	if err := s.store.SavePendingOrder(ctx, pending); err != nil {
		slog.Error("failed to save pending order", "order_id", order.OrderID, "error", err)
	}
	s.cart.Settle(items)

	h := Handoff{OrderID: order.OrderID, Pending: pending}
	s.tracker.Succeed(h)
	return h, nil
}

// State reports the current submission state.
func (s *Service) State() opstate.State[Handoff] {
	return s.tracker.State()
}

// UserMessage turns a Submit error into the text shown to the customer.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, orders.ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, ErrInFlight):
		return "Your order is already being placed."
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "Order failed: " + apiclient.Message(err, FailureFallback)
}
