package volunteer

import (
	"fmt"

	"coordinator/internal/pkg/errs"
)

// Status represents the account state of a volunteer.
//
// State transitions:
//
//	Pending ──> Active <──> Suspended
//
// Self-signup produces Pending (requires admin approval); admin-created
// volunteers start Active immediately.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPending means the volunteer signed up and awaits admin approval.
	StatusPending

	// StatusActive means the volunteer may be assigned deliveries and submit
	// delivery requests.
	StatusActive

	// StatusSuspended means the volunteer is blocked from all delivery
	// activity.
	StatusSuspended
)

func statusCodes() map[Status]string {
	return map[Status]string{
		StatusPending:   "pending",
		StatusActive:    "active",
		StatusSuspended: "suspended",
	}
}

// StatusFromCode parses a persisted or API status code.
func StatusFromCode(code string) (Status, error) {
	for s, c := range statusCodes() {
		if c == code {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"volunteer status",
		fmt.Errorf("%q is not a valid volunteer status", code),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"volunteer status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire code of the status.
func (s Status) String() string {
	if code, ok := statusCodes()[s]; ok {
		return code
	}
	return "unknown"
}
