package order

import (
	"fmt"

	"coordinator/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// illegal transitions are rejected in one place rather than re-checked ad hoc
// by every handler.
//
// State transitions:
//
//	PaymentPending ──> Ordered ──> Confirmed ──┬──> Delivered
//	                                           ├──> CantReach ──> Rescheduled ──> Confirmed
//	                                           └──> Cancelled
//
// Cancelled is reachable from every non-terminal state. Delivered and
// Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPaymentPending is the initial status at checkout, before the
	// customer's payment has been recorded.
	StatusPaymentPending

	// StatusOrdered indicates payment was recorded and the order awaits
	// admin confirmation.
	StatusOrdered

	// StatusConfirmed indicates the admin confirmed the order; it is now
	// eligible for delivery.
	StatusConfirmed

	// StatusDelivered indicates the delivery volunteer handed the order
	// over. Terminal.
	StatusDelivered

	// StatusCantReach indicates the delivery volunteer could not reach the
	// customer.
	StatusCantReach

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled

	// StatusRescheduled indicates a failed delivery was rescheduled and the
	// order awaits re-confirmation.
	StatusRescheduled
)

// statusCodes maps each status to its persisted wire code.
func statusCodes() map[Status]string {
	return map[Status]string{
		StatusPaymentPending: "payment_pending",
		StatusOrdered:        "ordered",
		StatusConfirmed:      "confirmed",
		StatusDelivered:      "delivered",
		StatusCantReach:      "cant_reach",
		StatusCancelled:      "cancelled",
		StatusRescheduled:    "rescheduled",
	}
}

// statusTransitions is the single source of truth for legal lifecycle moves.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPaymentPending: {StatusOrdered, StatusCancelled},
		StatusOrdered:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusDelivered, StatusCantReach, StatusCancelled},
		StatusCantReach:      {StatusRescheduled, StatusCancelled},
		StatusRescheduled:    {StatusConfirmed, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromCode parses a persisted or API status code into a Status.
func StatusFromCode(code string) (Status, error) {
	for s, c := range statusCodes() {
		if c == code {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", code),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire code of the status, e.g. "payment_pending".
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if code, ok := statusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// CanTransitionTo reports whether moving from the current status to target is
// a legal lifecycle transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to target and returns the new status.
// Returns an InvalidStateError when the transition is not in the table.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidStateError("order", s.String())
	}
	return target, nil
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0 && s.Validate() == nil
}
