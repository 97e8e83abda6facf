// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package confirmation reads a placed order back from the server for the
// confirmation view. The order ID comes from the checkout handoff or, in a
// later process, from the pending order slot.
package confirmation
