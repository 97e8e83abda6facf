// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package confirmation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/dish4u/checkout"
	"github.com/danielhkuo/dish4u/db"
	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/opstate"
)

// Terminal messages of the not-found state
const (
	NoOrderMessage   = "No order data found"
	LoadErrorMessage = "Error loading order data"
)

// ErrNotFound is the terminal state of the view. Its message tells which
// of the two cases happened; the only action left is returning home.
type ErrNotFound struct {
	Message string
	Err     error
}

func (e *ErrNotFound) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ErrNotFound) Unwrap() error { return e.Err }

type OrderReader interface {
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}

type PendingSource interface {
	PendingOrder(ctx context.Context) (models.PendingOrder, error)
}

type Fetcher struct {
	client  OrderReader
	pending PendingSource
	tracker opstate.Tracker[models.OrderView]
}

func NewFetcher(client OrderReader, pending PendingSource) *Fetcher {
	return &Fetcher{client: client, pending: pending}
}

// FetchOrder loads the order named by h, or by the pending slot when h is
// nil or carries no ID. It makes at most one request and never retries.
func (f *Fetcher) FetchOrder(ctx context.Context, h *checkout.Handoff) (models.OrderView, error) {
	if err := f.tracker.Begin(); err != nil {
		return models.OrderView{}, err
	}

	orderID, err := f.resolveOrderID(ctx, h)
	if err != nil {
		f.tracker.Fail(err)
		return models.OrderView{}, err
	}

	f.tracker.Send()
	order, err := f.client.GetOrder(ctx, orderID)
	if err != nil {
		slog.Warn("failed to load order", "order_id", orderID, "error", err)
		nf := &ErrNotFound{Message: LoadErrorMessage, Err: err}
		f.tracker.Fail(nf)
		return models.OrderView{}, nf
	}

	view := Flatten(*order)
	f.tracker.Succeed(view)
	return view, nil
}

func (f *Fetcher) State() opstate.State[models.OrderView] {
	return f.tracker.State()
}

func (f *Fetcher) resolveOrderID(ctx context.Context, h *checkout.Handoff) (string, error) {
	if h != nil && h.OrderID != "" {
		return h.OrderID, nil
	}
	if f.pending == nil {
		return "", &ErrNotFound{Message: NoOrderMessage}
	}

	pending, err := f.pending.PendingOrder(ctx)
	if errors.Is(err, db.ErrSlotEmpty) {
		return "", &ErrNotFound{Message: NoOrderMessage}
	}
	if err != nil {
		// An unreadable slot is reported like any other load failure
		return "", &ErrNotFound{Message: LoadErrorMessage, Err: err}
	}
	if pending.OrderID == "" {
		return "", &ErrNotFound{Message: NoOrderMessage}
	}
	return pending.OrderID, nil
}

// Flatten maps a server order onto the display model.
func Flatten(order models.Order) models.OrderView {
	var orderDate time.Time
	if order.CreatedAt != nil {
		orderDate = *order.CreatedAt
	}
	return models.OrderView{
		OrderID:   order.OrderID,
		OrderDate: orderDate,
		UserData: models.DeliveryForm{
			FirstName: order.FirstName,
			LastName:  order.LastName,
			Email:     order.Email,
			Phone:     order.Phone,
			Address:   order.Address,
		},
		Items:       order.Items,
		Subtotal:    order.Subtotal,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
		Status:      order.Status.OrDefault(),
	}
}
