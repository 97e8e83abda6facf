// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestLoggingTransport_AddsRequestID(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(5 * time.Second)
	req, _ := http.NewRequest("GET", srv.URL+"/orders", nil)

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", resp.StatusCode)
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("Expected a UUID request ID, got %q", seen)
	}
	if req.Header.Get(RequestIDHeader) != "" {
		t.Error("Transport must not modify the caller's request")
	}
}

func TestLoggingTransport_KeepsExistingRequestID(t *testing.T) {
	var seen string
	tr := &LoggingTransport{Base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get(RequestIDHeader)
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})}

	req := httptest.NewRequest("GET", "http://api.test/orders", nil)
	req.Header.Set(RequestIDHeader, "req-123")

	if _, err := tr.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	if seen != "req-123" {
		t.Errorf("Expected request ID to be kept, got %q", seen)
	}
}

func TestLoggingTransport_PropagatesError(t *testing.T) {
	boom := errors.New("connection refused")
	tr := &LoggingTransport{Base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, boom
	})}

	req := httptest.NewRequest("POST", "http://api.test/order", nil)
	resp, err := tr.RoundTrip(req)
	if !errors.Is(err, boom) {
		t.Errorf("Expected transport error, got %v", err)
	}
	if resp != nil {
		t.Error("Expected nil response on error")
	}
}
