// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/dish4u/auth"
	"github.com/danielhkuo/dish4u/models"
)

// SubmitOrder posts a new order. It succeeds only on a 2xx status with
// success=true and a server-assigned _id, and returns the server record.
func (c *Client) SubmitOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/order", order)
	if err != nil {
		return nil, err
	}

	var resp models.SubmitOrderResponse
	status, err := c.do(req, "submit order", &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Order == nil || resp.Order.BackendID == "" {
		return nil, &APIError{StatusCode: status, Message: resp.Message}
	}

	slog.Info("order submitted", "order_id", order.OrderID, "backend_id", resp.Order.BackendID)
	return resp.Order, nil
}

// GetOrder reads a single order by its client-generated order ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/order/id/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}

	var resp models.GetOrderResponse
	status, err := c.do(req, "get order", &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Order == nil {
		return nil, &APIError{StatusCode: status, Message: resp.Message}
	}
	return resp.Order, nil
}

// ListOrders fetches every order. A missing or non-array "orders" field
// yields an empty list. Elements that are not objects are skipped, and
// fields of the wrong type are left zero, so one bad order never hides the
// others.
func (c *Client) ListOrders(ctx context.Context, session auth.Session) ([]models.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	session.SetBearer(req)

	var resp struct {
		Orders json.RawMessage `json:"orders"`
	}
	if _, err := c.do(req, "list orders", &resp); err != nil {
		return nil, err
	}
	return decodeOrders(resp.Orders), nil
}

func decodeOrders(raw json.RawMessage) []models.Order {
	orders := []models.Order{}
	if len(raw) == 0 || raw[0] != '[' {
		if len(raw) > 0 {
			slog.Warn("orders field is not an array", "value", truncate(string(raw), 64))
		}
		return orders
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		slog.Warn("failed to decode orders", "error", err)
		return orders
	}

	for i, elem := range elems {
		order, err := decodeOrder(elem)
		if err != nil {
			slog.Warn("skipping malformed order", "index", i, "error", err)
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// decodeOrder decodes one list element. Fields that fail to decode are
// left zero and logged; only a non-object element is an error.
func decodeOrder(elem json.RawMessage) (models.Order, error) {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Order{}, fmt.Errorf("order is not an object: %s", truncate(string(trimmed), 32))
	}

	var order models.Order
	err := json.Unmarshal(elem, &order)
	if err == nil {
		return order, nil
	}

	var fields map[string]json.RawMessage
	if json.Unmarshal(elem, &fields) != nil || fields == nil {
		return models.Order{}, err
	}

	order = models.Order{}
	for name, value := range fields {
		one, _ := json.Marshal(map[string]json.RawMessage{name: value})
		next := order
		ferr := json.Unmarshal(one, &next)
		if ferr == nil {
			order = next
			continue
		}
		slog.Warn("order field has unexpected type", "order_id", order.OrderID, "field", name, "value", truncate(string(value), 64), "error", ferr)

		// Type mismatches leave only the offending values zero
		var typeErr *json.UnmarshalTypeError
		if errors.As(ferr, &typeErr) {
			order = next
		}
	}
	return order, nil
}

// UpdateStatus sets the status of one order.
func (c *Client) UpdateStatus(ctx context.Context, session auth.Session, orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return &models.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	path := "/orders/" + url.PathEscape(orderID) + "/status"
	req, err := c.newJSONRequest(ctx, http.MethodPatch, path, models.UpdateStatusRequest{Status: status})
	if err != nil {
		return err
	}
	session.SetBearer(req)

	if _, err := c.do(req, "update order status", nil); err != nil {
		return err
	}

	slog.Info("order status updated", "order_id", orderID, "status", status)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
