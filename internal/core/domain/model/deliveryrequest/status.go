package deliveryrequest

import (
	"fmt"

	"coordinator/internal/pkg/errs"
)

// Status represents the state of a delivery request.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Approved and Rejected are terminal and never revisited.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPending means the request awaits an admin decision.
	StatusPending

	// StatusApproved means the request was approved and the volunteer put on
	// delivery duty. Terminal.
	StatusApproved

	// StatusRejected means the request was declined, either explicitly or by
	// the cascade when a sibling request was approved. Terminal.
	StatusRejected
)

func statusCodes() map[Status]string {
	return map[Status]string{
		StatusPending:  "pending",
		StatusApproved: "approved",
		StatusRejected: "rejected",
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
		"request status",
		fmt.Errorf("%q is not a valid request status", code),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"request status",
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
