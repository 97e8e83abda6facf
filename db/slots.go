// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/dish4u/models"
)

// Well-known slot names
const (
	SlotPendingOrder = "pendingOrder"
	SlotRole         = "role"
	SlotAdminToken   = "adminToken"
)

var ErrSlotEmpty = errors.New("slot is empty")

// Store keeps named values that must survive between views and between
// CLI invocations. It is the stand-in for browser local storage.
type Store struct {
	db     *sql.DB
	driver string
}

func NewStore(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// Put writes value into the named slot, replacing any previous value.
func (s *Store) Put(ctx context.Context, name, value string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO client_slot (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`), name, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", name, err)
	}
	return nil
}

// Get reads the named slot. It returns ErrSlotEmpty when nothing is stored.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT value FROM client_slot WHERE name = ?
	`), name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrSlotEmpty
	}
	if err != nil {
		return "", fmt.Errorf("failed to read slot %s: %w", name, err)
	}
	return value, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM client_slot WHERE name = ?`), name)
	if err != nil {
		return fmt.Errorf("failed to clear slot %s: %w", name, err)
	}
	return nil
}

func (s *Store) PutJSON(ctx context.Context, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", name, err)
	}
	return s.Put(ctx, name, string(b))
}

func (s *Store) GetJSON(ctx context.Context, name string, v any) error {
	value, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), v); err != nil {
		return fmt.Errorf("failed to decode slot %s: %w", name, err)
	}
	return nil
}

// SavePendingOrder stores the last submitted order for the confirmation view.
func (s *Store) SavePendingOrder(ctx context.Context, pending models.PendingOrder) error {
	if err := s.PutJSON(ctx, SlotPendingOrder, pending); err != nil {
		return err
	}
	slog.Debug("pending order saved", "order_id", pending.OrderID)
	return nil
}

// PendingOrder returns the last submitted order, or ErrSlotEmpty.
func (s *Store) PendingOrder(ctx context.Context) (models.PendingOrder, error) {
	var pending models.PendingOrder
	if err := s.GetJSON(ctx, SlotPendingOrder, &pending); err != nil {
		return models.PendingOrder{}, err
	}
	return pending, nil
}

func (s *Store) SetRole(ctx context.Context, role string) error {
	return s.Put(ctx, SlotRole, role)
}

// Role returns the stored role flag, or "" when none is set.
func (s *Store) Role(ctx context.Context) (string, error) {
	role, err := s.Get(ctx, SlotRole)
	if errors.Is(err, ErrSlotEmpty) {
		return "", nil
	}
	return role, err
}

func (s *Store) ClearRole(ctx context.Context) error {
	return s.Delete(ctx, SlotRole)
}

// AdminToken returns the token saved at admin login, or "".
func (s *Store) AdminToken(ctx context.Context) (string, error) {
	token, err := s.Get(ctx, SlotAdminToken)
	if errors.Is(err, ErrSlotEmpty) {
		return "", nil
	}
	return token, err
}

func (s *Store) SetAdminToken(ctx context.Context, token string) error {
	return s.Put(ctx, SlotAdminToken, token)
}

func (s *Store) ClearAdminToken(ctx context.Context) error {
	return s.Delete(ctx, SlotAdminToken)
}

// rebind converts ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
