// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"sync"

	"github.com/danielhkuo/dish4u/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrDuplicateID   = errors.New("order ID already exists")
)

// Store is the in-memory backing store of the development backend.
// Orders keep insertion order.
type Store struct {
	mu       sync.RWMutex
	orders   []models.Order
	byID     map[string]int
	items    []models.MenuItem
	messages []models.ContactRequest
}

func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

func (s *Store) AddOrder(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[order.OrderID]; ok {
		return ErrDuplicateID
	}
	s.byID[order.OrderID] = len(s.orders)
	s.orders = append(s.orders, order)
	return nil
}

func (s *Store) Order(orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return s.orders[i], nil
}

// Orders returns a copy of every stored order.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) SetStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	s.orders[i].Status = status
	return s.orders[i], nil
}

func (s *Store) AddItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *Store) Items() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) AddMessage(msg models.ContactRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *Store) Messages() []models.ContactRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactRequest, len(s.messages))
	copy(out, s.messages)
	return out
}
