// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cart

import (
	"errors"
	"sync"
	"testing"

	"github.com/danielhkuo/dish4u/models"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		item    models.CartItem
		wantErr error
	}{
		{"valid item", models.CartItem{ID: "a", Name: "Naan", UnitPrice: 40, Quantity: 1}, nil},
		{"free item", models.CartItem{ID: "b", Name: "Water", UnitPrice: 0, Quantity: 1}, nil},
		{"missing id", models.CartItem{Name: "Naan", UnitPrice: 40, Quantity: 1}, ErrInvalidItem},
		{"negative price", models.CartItem{ID: "c", UnitPrice: -1, Quantity: 1}, ErrInvalidItem},
		{"zero quantity", models.CartItem{ID: "d", UnitPrice: 10, Quantity: 0}, ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.Add(tt.item)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && !c.IsEmpty() {
				t.Error("invalid item should not be added")
			}
		})
	}
}

func TestAdd_MergesSameID(t *testing.T) {
	c := New()
	c.Add(models.CartItem{ID: "a", UnitPrice: 100, Quantity: 2})
	c.Add(models.CartItem{ID: "a", UnitPrice: 100, Quantity: 3})

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.Add(models.CartItem{ID: "a", UnitPrice: 100, Quantity: 2})
	c.Add(models.CartItem{ID: "b", UnitPrice: 50, Quantity: 1})

	if err := c.SetQuantity("a", 4); err != nil {
		t.Fatalf("SetQuantity() error = %v", err)
	}
	if got := c.Items()[0].Quantity; got != 4 {
		t.Errorf("expected quantity 4, got %d", got)
	}

	// Zero removes the line
	if err := c.SetQuantity("b", 0); err != nil {
		t.Fatalf("SetQuantity(0) error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 line after zero quantity, got %d", c.Len())
	}

	if err := c.SetQuantity("missing", 2); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(models.CartItem{ID: "a", UnitPrice: 100, Quantity: 1})
	c.Add(models.CartItem{ID: "b", UnitPrice: 100, Quantity: 1})

	if err := c.Remove("a"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := c.Remove("a"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("second Remove() should fail, got %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 line left, got %d", c.Len())
	}
}

func TestSettle(t *testing.T) {
	ordered := []models.CartItem{
		{ID: "a", UnitPrice: 100, Quantity: 2},
		{ID: "b", UnitPrice: 50, Quantity: 1},
	}

	tests := []struct {
		name  string
		after func(c *Cart)
		want  []models.CartItem
	}{
		{"nothing changed", func(c *Cart) {}, []models.CartItem{}},
		{"line added mid-flight", func(c *Cart) {
			c.Add(models.CartItem{ID: "c", UnitPrice: 30, Quantity: 1})
		}, []models.CartItem{{ID: "c", UnitPrice: 30, Quantity: 1}}},
		{"quantity topped up mid-flight", func(c *Cart) {
			c.Add(models.CartItem{ID: "a", UnitPrice: 100, Quantity: 3})
		}, []models.CartItem{{ID: "a", UnitPrice: 100, Quantity: 3}}},
		{"line removed mid-flight", func(c *Cart) {
			c.Remove("b")
		}, []models.CartItem{}},
		{"quantity lowered mid-flight", func(c *Cart) {
			c.SetQuantity("a", 1)
		}, []models.CartItem{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, item := range ordered {
				c.Add(item)
			}
			tt.after(c)

			c.Settle(ordered)

			got := c.Items()
			if len(got) != len(tt.want) {
				t.Fatalf("Items() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.CartItem
		want  float64
	}{
		{"empty", nil, 0},
		{"single line", []models.CartItem{{ID: "a", UnitPrice: 100, Quantity: 2}}, 200},
		{"several lines", []models.CartItem{
			{ID: "a", UnitPrice: 100, Quantity: 2},
			{ID: "b", UnitPrice: 12.5, Quantity: 4},
		}, 250},
		{"zero price counts as zero", []models.CartItem{
			{ID: "a", UnitPrice: 0, Quantity: 3},
			{ID: "b", UnitPrice: 10, Quantity: 1},
		}, 10},
		{"zero quantity counts as zero", []models.CartItem{{ID: "a", UnitPrice: 99}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtotal(tt.items); got != tt.want {
				t.Errorf("Subtotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(models.CartItem{ID: "a", UnitPrice: 100, Quantity: 1})

	items := c.Items()
	items[0].Quantity = 99

	if c.Items()[0].Quantity != 1 {
		t.Error("modifying Items() result should not change the cart")
	}
}

func TestConcurrentAdds(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(models.CartItem{ID: "a", UnitPrice: 10, Quantity: 1})
		}()
	}
	wg.Wait()

	items := c.Items()
	if len(items) != 1 || items[0].Quantity != 50 {
		t.Errorf("expected one line with quantity 50, got %+v", items)
	}
}

func TestSubtotal_DecimalSum(t *testing.T) {
	items := []models.CartItem{
		{ID: "a", UnitPrice: 0.1, Quantity: 1},
		{ID: "b", UnitPrice: 0.2, Quantity: 1},
	}
	if got := Subtotal(items); got != 0.3 {
		t.Errorf("Subtotal() = %v, want 0.3", got)
	}
}
