package order

import (
	"fmt"

	"coordinator/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order.
// Payment capture and verification themselves are external collaborators; the
// aggregate only records their outcome.
type PaymentStatus int

const (
	// PaymentUnknown catches uninitialized values.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no payment has been recorded yet.
	PaymentPending

	// PaymentPaid means the customer submitted a payment that has not been
	// verified by the admin staff.
	PaymentPaid

	// PaymentVerified means the admin staff verified the payment.
	PaymentVerified
)

func paymentStatusCodes() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentVerified: "verified",
	}
}

// PaymentStatusFromCode parses a persisted payment status code.
func PaymentStatusFromCode(code string) (PaymentStatus, error) {
	for s, c := range paymentStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", code),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if _, ok := paymentStatusCodes()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the wire code of the payment status.
func (p PaymentStatus) String() string {
	if code, ok := paymentStatusCodes()[p]; ok {
		return code
	}
	return "unknown"
}
