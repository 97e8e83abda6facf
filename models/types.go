// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// OrderStatus is the delivery state of an order. Only admins change it.
type OrderStatus string

// Order status constants
const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
)

// Role constants for the admin role flag
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Statuses lists every status in lifecycle order.
var Statuses = []OrderStatus{StatusPending, StatusPreparing, StatusOnTheWay, StatusDelivered}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOnTheWay, StatusDelivered:
		return true
	}
	return false
}

// OrDefault returns s, or StatusPending when s is empty.
func (s OrderStatus) OrDefault() OrderStatus {
	if s == "" {
		return StatusPending
	}
	return s
}

// ValidationError is a client-side form error. It blocks the network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Client-held types

type CartItem struct {
	ID        string  `json:"_id"`
	Name      string  `json:"itemname"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type DeliveryForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// Request types

type OrderItem struct {
	ItemID   string  `json:"itemId"`
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is both the POST /order payload and the server record returned by
// the read endpoints. Server-only fields are omitted when empty.
type Order struct {
	BackendID   string      `json:"_id,omitempty"`
	OrderID     string      `json:"orderId"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Items       []OrderItem `json:"items"`
	Subtotal    float64     `json:"subtotal"`
	DeliveryFee float64     `json:"deliveryFee"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status,omitempty"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
}

// ItemCount sums item quantities. Missing quantities count as zero.
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

type UpdateStatusRequest struct {
	Status OrderStatus `json:"status"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MenuItem is a menu entry created through the item upload.
type MenuItem struct {
	ID          string    `json:"_id"`
	Name        string    `json:"itemname"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Response types

type SubmitOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

type GetOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type AddItemResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Item    *MenuItem `json:"item,omitempty"`
}

// Local types

// PendingOrderItem is a cart line copied into the pending order.
type PendingOrderItem struct {
	CartItem
	ItemNumber string `json:"itemNumber"`
}

// PendingOrder is the local copy of a just-submitted order, kept for display
// before the server copy is read back.
type PendingOrder struct {
	OrderID        string             `json:"orderId"`
	Items          []PendingOrderItem `json:"items"`
	Subtotal       float64            `json:"subtotal"`
	DeliveryFee    float64            `json:"deliveryFee"`
	Total          float64            `json:"total"`
	UserData       DeliveryForm       `json:"userData"`
	OrderDate      time.Time          `json:"orderDate"`
	Status         OrderStatus        `json:"status"`
	BackendOrderID string             `json:"backendOrderId,omitempty"`
}

// OrderView is the flattened display model of a confirmed order.
type OrderView struct {
	OrderID     string
	OrderDate   time.Time
	UserData    DeliveryForm
	Items       []OrderItem
	Subtotal    float64
	DeliveryFee float64
	Total       float64
	Status      OrderStatus
}

// DashboardStats is recomputed from the fetched list on every load.
type DashboardStats struct {
	TotalOrders int
	TotalItems  int
	Revenue     float64
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
