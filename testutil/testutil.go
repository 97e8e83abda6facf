// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/dish4u/cliparse"
	"github.com/danielhkuo/dish4u/db"
	"github.com/danielhkuo/dish4u/models"
)

// TestAdminToken is the admin token configured by GetTestConfig
const TestAdminToken = "test-admin-token"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		APIBaseURL:  "http://127.0.0.1/api",
		StateDriver: db.DriverSQLite,
		StateDSN:    ":memory:",
		HTTPTimeout: 5 * time.Second,
		DeliveryFee: 50,
		AdminToken:  TestAdminToken,
		LogLevel:    "error",
	}
}

// SetupTestStore opens a fresh SQLite slot store in a temp directory
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "state.db")
	conn, err := db.Open(db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return db.NewStore(conn, db.DriverSQLite)
}

// StartServer serves h over HTTP for the duration of the test and returns
// the API base URL.
func StartServer(t *testing.T, h http.Handler) string {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

// SampleCart returns two cart lines worth 2*120 + 1*80.
func SampleCart() []models.CartItem {
	return []models.CartItem{
		{ID: "665f1c2ab1d2", Name: "Paneer Tikka", UnitPrice: 120, Quantity: 2},
		{ID: "665f1c2ab9f0", Name: "Masala Dosa", UnitPrice: 80, Quantity: 1},
	}
}

// SampleDelivery returns a fully filled delivery form
func SampleDelivery() models.DeliveryForm {
	return models.DeliveryForm{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Address:   "12 MG Road, Bengaluru",
		Phone:     "+91 98765 43210",
	}
}

// SampleOrder returns an order payload as the client would submit it
func SampleOrder(orderID string) models.Order {
	form := SampleDelivery()
	return models.Order{
		OrderID:   orderID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Address:   form.Address,
		Phone:     form.Phone,
		Items: []models.OrderItem{
			{ItemID: "665f1c2ab1d2", ItemName: "Paneer Tikka", Price: 120, Quantity: 2},
			{ItemID: "665f1c2ab9f0", ItemName: "Masala Dosa", Price: 80, Quantity: 1},
		},
		Subtotal:    320,
		DeliveryFee: 50,
		Total:       370,
	}
}

// AdminHeaders returns the Authorization header for TestAdminToken
func AdminHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + TestAdminToken}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
