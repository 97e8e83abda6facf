// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package confirmation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/dish4u/apiclient"
	"github.com/danielhkuo/dish4u/checkout"
	"github.com/danielhkuo/dish4u/db"
	"github.com/danielhkuo/dish4u/handlers"
	"github.com/danielhkuo/dish4u/models"
	"github.com/danielhkuo/dish4u/opstate"
	"github.com/danielhkuo/dish4u/router"
	"github.com/danielhkuo/dish4u/testutil"
)

type countingReader struct {
	calls int
	order *models.Order
	err   error
}

func (r *countingReader) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	o := *r.order
	o.OrderID = orderID
	return &o, nil
}

func setupStub(t *testing.T) (*apiclient.Client, *handlers.Store) {
	t.Helper()
	store := handlers.NewStore()
	baseURL := testutil.StartServer(t, router.NewRouter(store, testutil.GetTestConfig()))
	return apiclient.New(baseURL, nil), store
}

func TestFetchOrder_FromHandoff(t *testing.T) {
	client, _ := setupStub(t)
	created, err := client.SubmitOrder(context.Background(), testutil.SampleOrder("ORD1"))
	if err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(client, testutil.SetupTestStore(t))
	view, err := f.FetchOrder(context.Background(), &checkout.Handoff{OrderID: "ORD1"})
	if err != nil {
		t.Fatalf("FetchOrder() error = %v", err)
	}

	if view.OrderID != "ORD1" || view.Total != 370 || len(view.Items) != 2 {
		t.Errorf("Unexpected view %+v", view)
	}
	if view.UserData.Phone != "+91 98765 43210" {
		t.Errorf("Expected phone in user data, got %q", view.UserData.Phone)
	}
	if !view.OrderDate.Equal(*created.CreatedAt) {
		t.Errorf("Expected order date from createdAt, got %v", view.OrderDate)
	}
	if view.Status != models.StatusPending {
		t.Errorf("Expected pending, got %s", view.Status)
	}
	if f.State().Phase != opstate.Succeeded {
		t.Errorf("Expected succeeded, got %s", f.State().Phase)
	}
}

func TestFetchOrder_HandoffWinsOverSlot(t *testing.T) {
	store := testutil.SetupTestStore(t)
	store.SavePendingOrder(context.Background(), models.PendingOrder{OrderID: "FROM-SLOT"})

	reader := &countingReader{order: &models.Order{}}
	f := NewFetcher(reader, store)

	view, err := f.FetchOrder(context.Background(), &checkout.Handoff{OrderID: "FROM-HANDOFF"})
	if err != nil {
		t.Fatal(err)
	}
	if view.OrderID != "FROM-HANDOFF" {
		t.Errorf("Expected handoff ID, got %s", view.OrderID)
	}
}

func TestFetchOrder_SlotFallback(t *testing.T) {
	store := testutil.SetupTestStore(t)
	store.SavePendingOrder(context.Background(), models.PendingOrder{OrderID: "FROM-SLOT"})

	reader := &countingReader{order: &models.Order{}}
	f := NewFetcher(reader, store)

	for _, h := range []*checkout.Handoff{nil, {}} {
		view, err := f.FetchOrder(context.Background(), h)
		if err != nil {
			t.Fatal(err)
		}
		if view.OrderID != "FROM-SLOT" {
			t.Errorf("Expected slot ID, got %s", view.OrderID)
		}
	}
}

func TestFetchOrder_NoOrderID(t *testing.T) {
	reader := &countingReader{order: &models.Order{}}
	f := NewFetcher(reader, testutil.SetupTestStore(t))

	_, err := f.FetchOrder(context.Background(), nil)

	var nf *ErrNotFound
	if !errors.As(err, &nf) || nf.Message != NoOrderMessage {
		t.Fatalf("Expected %q, got %v", NoOrderMessage, err)
	}
	if reader.calls != 0 {
		t.Error("No request should be made without an order ID")
	}
	if f.State().Phase != opstate.Failed {
		t.Errorf("Expected failed, got %s", f.State().Phase)
	}
}

func TestFetchOrder_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", &apiclient.APIError{StatusCode: 404, Message: "Order not found"}},
		{"success false", &apiclient.APIError{StatusCode: 200}},
		{"transport", &apiclient.TransportError{Op: "get order", Err: errors.New("timeout")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &countingReader{err: tt.err}
			f := NewFetcher(reader, nil)

			_, err := f.FetchOrder(context.Background(), &checkout.Handoff{OrderID: "ORD1"})

			var nf *ErrNotFound
			if !errors.As(err, &nf) || nf.Message != LoadErrorMessage {
				t.Fatalf("Expected %q, got %v", LoadErrorMessage, err)
			}
			if !errors.Is(err, tt.err) {
				t.Error("Expected cause to be wrapped")
			}
			if reader.calls != 1 {
				t.Errorf("Expected exactly one request, got %d", reader.calls)
			}
		})
	}
}

func TestFetchOrder_CorruptSlot(t *testing.T) {
	store := testutil.SetupTestStore(t)
	store.Put(context.Background(), db.SlotPendingOrder, "{not json")

	f := NewFetcher(&countingReader{order: &models.Order{}}, store)
	_, err := f.FetchOrder(context.Background(), nil)

	var nf *ErrNotFound
	if !errors.As(err, &nf) || nf.Message != LoadErrorMessage {
		t.Errorf("Expected %q, got %v", LoadErrorMessage, err)
	}
}

func TestFlatten(t *testing.T) {
	created := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	order := testutil.SampleOrder("ORD1")
	order.CreatedAt = &created
	order.Status = models.StatusOnTheWay

	view := Flatten(order)
	if !view.OrderDate.Equal(created) || view.Status != models.StatusOnTheWay {
		t.Errorf("Unexpected view %+v", view)
	}
	if view.UserData.FirstName != "Asha" || view.UserData.Address != order.Address {
		t.Errorf("Unexpected user data %+v", view.UserData)
	}

	order.Status = ""
	order.CreatedAt = nil
	view = Flatten(order)
	if view.Status != models.StatusPending {
		t.Errorf("Missing status should display as pending, got %s", view.Status)
	}
	if !view.OrderDate.IsZero() {
		t.Error("Missing createdAt should leave a zero date")
	}
}
