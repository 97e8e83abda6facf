// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package admin holds the state of the two admin views: the order dashboard
and the new menu item form.

Both require an admin auth.Session at construction. The check is advisory;
the session's token travels with every request so the server can verify it.

# Dashboard

	d, err := admin.NewDashboard(client, session)
	d.Load(ctx)
	stats := d.Stats()
	err = d.UpdateStatus(ctx, "ORD...", models.StatusPreparing)

A failed load leaves an empty list and the "Failed to fetch orders" banner.
A status change touches the local list only after the server accepts it.
Updates of different orders may run at the same time; a second update of
the same order is refused with ErrUpdateInProgress. Results that arrive
after ctx is cancelled are dropped.

Two admins changing one order at the same time is not detected; the last
write wins on the server.

# Item Form

	f, err := admin.NewItemForm(client, session)
	f.SetFields(admin.ItemFields{Name: "Masala Dosa", ...})
	f.SetImage("dosa.png", data)
	err = f.Submit(ctx)
	success, failure := f.Messages()

The form is cleared only when the server answers 201 Created.
*/
package admin
