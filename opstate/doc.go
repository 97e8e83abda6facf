// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package opstate models a user-triggered operation as an explicit state
machine instead of ad-hoc loading and error flags.

	Idle ──Begin──► Validating ──Send──► InFlight ──Succeed──► Succeeded
	                    │                    │
	                    └──────Fail──────────┴──────Fail──────► Failed

Begin is allowed from Idle, Succeeded or Failed, so a user can retry after
a failure. While an attempt is Validating or InFlight, Begin returns
ErrBusy; this is how views reject a second submit press. Send, Succeed
and Fail panic when called out of order.

	var op opstate.Tracker[string]
	if err := op.Begin(); err != nil {
		return err // already running
	}
	...
	op.Send()
	...
	op.Succeed(id)
*/
package opstate
