// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the client session and the admin guard.

# Sessions

A Session carries the role decision into the views that need it instead of
having them read a global flag:

	sess, err := auth.LoadSession(ctx, store, cfg.AdminToken)
	dash, err := admin.NewDashboard(client, sess)

LoadSession reads the stored role flag; an unset flag gives a customer
session. Each session gets a random UUID for log correlation.

# Admin Guard

	if err := auth.RequireAdmin(sess); err != nil {
		// ErrNotAdmin: send the user to the login page
	}

This check is advisory only. It is not a security boundary: anyone can set
the role flag. Every privileged request carries the session's admin token
as a bearer token so the server re-verifies the caller:

	sess.SetBearer(req) // Authorization: Bearer <token>

# Server Side

The stub backend validates tokens with:

	err := auth.ValidateAdminToken(auth.BearerToken(r), expected)

Comparison is constant time (hmac.Equal).

# ID Generation

Random hex IDs for records:

	id, err := auth.GenerateID(12)  // 24 hex characters
*/
package auth
