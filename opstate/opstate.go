// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package opstate

import (
	"errors"
	"fmt"
	"sync"
)

type Phase int

const (
	Idle Phase = iota
	Validating
	InFlight
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// ErrBusy is returned by Begin while an attempt is validating or in flight.
var ErrBusy = errors.New("operation already in progress")

// State is a snapshot of one operation. Result is set only when Succeeded,
// Err only when Failed.
type State[T any] struct {
	Phase  Phase
	Result T
	Err    error
}

// Tracker holds the state of a single user-triggered operation.
// Transitions:
//
//	Idle|Succeeded|Failed -> Validating -> InFlight -> Succeeded|Failed
//	Validating -> Failed
//
// Send, Succeed and Fail panic when called out of order. Only the goroutine
// whose Begin succeeded drives the attempt, so an out-of-order call is a bug
// in the caller.
type Tracker[T any] struct {
	mu    sync.Mutex
	state State[T]
}

// Begin starts a new attempt. It fails with ErrBusy while another attempt
// is validating or in flight.
func (t *Tracker[T]) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Phase == Validating || t.state.Phase == InFlight {
		return ErrBusy
	}
	t.state = State[T]{Phase: Validating}
	return nil
}

// Send moves a validated attempt onto the network.
func (t *Tracker[T]) Send() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.require("Send", Validating)
	t.state.Phase = InFlight
}

func (t *Tracker[T]) Succeed(result T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.require("Succeed", InFlight)
	t.state = State[T]{Phase: Succeeded, Result: result}
}

// Fail ends the attempt from Validating or InFlight.
func (t *Tracker[T]) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.require("Fail", Validating, InFlight)
	t.state = State[T]{Phase: Failed, Err: err}
}

func (t *Tracker[T]) require(op string, allowed ...Phase) {
	for _, p := range allowed {
		if t.state.Phase == p {
			return
		}
	}
	panic(fmt.Sprintf("opstate: %s called in phase %s", op, t.state.Phase))
}

func (t *Tracker[T]) State() State[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker[T]) Phase() Phase {
	return t.State().Phase
}
