// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the client's small amount of durable state.

# Opening

Open connects with the sqlite (modernc.org/sqlite) or postgres (lib/pq)
driver and creates the schema:

	conn, err := db.Open(db.DriverSQLite, "dish4u.db")
	store := db.NewStore(conn, db.DriverSQLite)

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - client_slot: name → value (TEXT), updated_at

# Slots

Only two slots are used:

  - pendingOrder: JSON of the last submitted order (models.PendingOrder),
    written once by checkout and read by the confirmation view
  - role: the admin role flag ("admin" or unset)

	store.SavePendingOrder(ctx, pending)
	pending, err := store.PendingOrder(ctx) // ErrSlotEmpty when unset

	store.SetRole(ctx, models.RoleAdmin)
	role, err := store.Role(ctx) // "" when unset

Queries are written with ? placeholders and rebound to $n for PostgreSQL.
*/
package db
