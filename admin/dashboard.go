// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/dish4u/auth"
	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/opstate"
)

// Dashboard banners
const (
	FetchFailedMessage  = "Failed to fetch orders"
	UpdateFailedMessage = "Failed to update order status"
)

var ErrUpdateInProgress = errors.New("status update already in progress for this order")

// OrdersAPI is the part of the API client the dashboard needs.
type OrdersAPI interface {
	ListOrders(ctx context.Context, session auth.Session) ([]models.Order, error)
	UpdateStatus(ctx context.Context, session auth.Session, orderID string, status models.OrderStatus) error
}

type Dashboard struct {
	client  OrdersAPI
	session auth.Session
	load    opstate.Tracker[[]models.Order]

	mu       sync.Mutex
	orders   []models.Order
	stats    models.DashboardStats
	banner   string
	updating map[string]bool
}

func NewDashboard(client OrdersAPI, session auth.Session) (*Dashboard, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}
	return &Dashboard{
		client:   client,
		session:  session,
		orders:   []models.Order{},
		updating: make(map[string]bool),
	}, nil
}

// Load fetches the order list and recomputes the stats. On failure the
// list is emptied and the banner is set.
func (d *Dashboard) Load(ctx context.Context) error {
	if err := d.load.Begin(); err != nil {
		return err
	}
	d.setBanner("")
	d.load.Send()

	orders, err := d.client.ListOrders(ctx, d.session)
	if ctx.Err() != nil {
		d.load.Fail(ctx.Err())
		return ctx.Err()
	}
	if err != nil {
		d.session.Logger().Warn("failed to fetch orders", "error", err)
		d.replaceOrders([]models.Order{})
		d.setBanner(FetchFailedMessage)
		d.load.Fail(err)
		return err
	}

	d.replaceOrders(orders)
	d.session.Logger().Debug("orders loaded", "count", len(orders))
	d.load.Succeed(orders)
	return nil
}

// Refresh reloads the list.
func (d *Dashboard) Refresh(ctx context.Context) error {
	return d.Load(ctx)
}

// UpdateStatus changes the status of one order.
func (d *Dashboard) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return &models.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	d.mu.Lock()
	if d.updating[orderID] {
		d.mu.Unlock()
		return ErrUpdateInProgress
	}
	d.updating[orderID] = true
	d.banner = ""
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.updating, orderID)
		d.mu.Unlock()
	}()

	err := d.client.UpdateStatus(ctx, d.session, orderID, status)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		d.session.Logger().Warn("failed to update order status", "order_id", orderID, "status", status, "error", err)
		d.setBanner(UpdateFailedMessage)
		return err
	}

	d.mu.Lock()
	for i := range d.orders {
		if d.orders[i].OrderID == orderID {
			d.orders[i].Status = status
		}
	}
	d.mu.Unlock()

	d.session.Logger().Info("order status changed", "order_id", orderID, "status", status)
	return nil
}

// Orders returns a copy of the current list.
func (d *Dashboard) Orders() []models.Order {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.Order, len(d.orders))
	copy(out, d.orders)
	return out
}

func (d *Dashboard) Stats() models.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Banner is the current error text, or "".
func (d *Dashboard) Banner() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.banner
}

func (d *Dashboard) IsUpdating(orderID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updating[orderID]
}

// LoadState reports the state of the last Load.
func (d *Dashboard) LoadState() opstate.State[[]models.Order] {
	return d.load.State()
}

func (d *Dashboard) replaceOrders(orders []models.Order) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.orders = orders
	d.stats = ComputeStats(orders)
}

func (d *Dashboard) setBanner(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.banner = msg
}

// ComputeStats counts orders, item quantities and revenue.
func ComputeStats(orders []models.Order) models.DashboardStats {
	stats := models.DashboardStats{TotalOrders: len(orders)}
	revenue := decimal.Zero
	for _, o := range orders {
		stats.TotalItems += o.ItemCount()
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
	}
	stats.Revenue = revenue.InexactFloat64()
	return stats
}
