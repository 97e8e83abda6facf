// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/dish4u/auth"
	"github.com/danielhkuo/dish4u/cliparse"
	"github.com/danielhkuo/dish4u/middleware"
	"github.com/danielhkuo/dish4u/models"
)

type OrderHandler struct {
	store *Store
	cfg   cliparse.Config
}

func NewOrderHandler(store *Store, cfg cliparse.Config) *OrderHandler {
	return &OrderHandler{store: store, cfg: cfg}
}

// CreateOrder handles POST /order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := middleware.ParseJSONBody(r, &order); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if order.OrderID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "orderId is required")
		return
	}
	if len(order.Items) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "items are required")
		return
	}
	for _, field := range []struct{ name, value string }{
		{"firstName", order.FirstName},
		{"lastName", order.LastName},
		{"email", order.Email},
		{"address", order.Address},
		{"phone", order.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, field.name+" is required")
			return
		}
	}

	// Generate backend ID
	backendID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate order ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	now := time.Now().UTC()
	order.BackendID = backendID
	order.Status = models.StatusPending
	order.CreatedAt = &now

	if err := h.store.AddOrder(order); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			middleware.ErrorResponse(w, http.StatusConflict, "Order ID already exists")
			return
		}
		slog.Error("failed to store order", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	slog.Info("order created", "order_id", order.OrderID, "backend_id", backendID, "total", order.Total)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitOrderResponse{
		Success: true,
		Message: "Order placed successfully",
		Order:   &order,
	})
}

// GetOrder handles GET /order/id/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if orderID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "orderId is required")
		return
	}

	order, err := h.store.Order(orderID)
	if errors.Is(err, ErrOrderNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetOrderResponse{
		Success: true,
		Order:   &order,
	})
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.cfg.AdminToken) {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListOrdersResponse{
		Orders: h.store.Orders(),
	})
}

// UpdateStatus handles PATCH /orders/{orderId}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if orderID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "orderId is required")
		return
	}

	if !requireAdmin(w, r, h.cfg.AdminToken) {
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Status.Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid status")
		return
	}

	order, err := h.store.SetStatus(orderID, req.Status)
	if errors.Is(err, ErrOrderNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
		return
	}

	slog.Info("order status changed", "order_id", orderID, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.GetOrderResponse{
		Success: true,
		Message: "Order status updated",
		Order:   &order,
	})
}
