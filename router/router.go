// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/dish4u/cliparse"
	"github.com/danielhkuo/dish4u/handlers"
	"github.com/danielhkuo/dish4u/middleware"
)

// APIPrefix matches the path of the hosted backend's base URL.
const APIPrefix = "/api"

func NewRouter(store *handlers.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(store, cfg)
	itemHandler := handlers.NewItemHandler(store, cfg)
	contactHandler := handlers.NewContactHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Customer operations (public)
	mux.HandleFunc("POST "+APIPrefix+"/order", middleware.WithLogging(orderHandler.CreateOrder))
	mux.HandleFunc("GET "+APIPrefix+"/order/id/{orderId}", middleware.WithLogging(orderHandler.GetOrder))
	mux.HandleFunc("POST "+APIPrefix+"/contact", middleware.WithLogging(contactHandler.Submit))

	// Admin operations (bearer token when configured)
	mux.HandleFunc("GET "+APIPrefix+"/orders", middleware.WithLogging(orderHandler.ListOrders))
	mux.HandleFunc("PATCH "+APIPrefix+"/orders/{orderId}/status", middleware.WithLogging(orderHandler.UpdateStatus))
	mux.HandleFunc("POST "+APIPrefix+"/add-item", middleware.WithLogging(itemHandler.AddItem))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dish4u stub API v1"))
	})

	return mux
}
