// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/testutil"
)

// TestConcurrentOrderCreation verifies that simultaneous orders are all
// stored once, and that racing duplicates of one orderId yield one winner.
func TestConcurrentOrderCreation(t *testing.T) {
	store := NewStore()
	handler := NewOrderHandler(store, testutil.GetTestConfig())

	numOrders := 20
	var created atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numOrders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/order", testutil.SampleOrder(fmt.Sprintf("ORD%03d", i)), nil)
			w := httptest.NewRecorder()
			handler.CreateOrder(w, req)
			if w.Code == http.StatusCreated {
				created.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if int(created.Load()) != numOrders {
		t.Errorf("Expected %d created orders, got %d", numOrders, created.Load())
	}
	if len(store.Orders()) != numOrders {
		t.Errorf("Expected %d stored orders, got %d", numOrders, len(store.Orders()))
	}

	var winners atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/order", testutil.SampleOrder("ORD-DUP"), nil)
			w := httptest.NewRecorder()
			handler.CreateOrder(w, req)
			if w.Code == http.StatusCreated {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	if winners.Load() != 1 {
		t.Errorf("Expected exactly one duplicate to win, got %d", winners.Load())
	}
}

// TestConcurrentStatusUpdates runs updates on different orders in parallel.
func TestConcurrentStatusUpdates(t *testing.T) {
	store := NewStore()
	handler := NewOrderHandler(store, testutil.GetTestConfig())

	ids := []string{"ORDA", "ORDB", "ORDC", "ORDD"}
	for _, id := range ids {
		if err := store.AddOrder(testutil.SampleOrder(id)); err != nil {
			t.Fatal(err)
		}
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(id string, status models.OrderStatus) {
			defer wg.Done()

			req := testutil.MakeRequest("PATCH", "/api/orders/"+id+"/status",
				models.UpdateStatusRequest{Status: status}, testutil.AdminHeaders())
			req.SetPathValue("orderId", id)
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, req)
		}(id, models.Statuses[i])
	}
	wg.Wait()

	for i, id := range ids {
		o, err := store.Order(id)
		if err != nil {
			t.Fatal(err)
		}
		if o.Status != models.Statuses[i] {
			t.Errorf("Order %s: expected %s, got %s", id, models.Statuses[i], o.Status)
		}
	}
}
