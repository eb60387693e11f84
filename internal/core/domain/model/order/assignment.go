package order

import (
	"fmt"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"
)

// DeliveryMethod identifies how an order reaches the customer.
type DeliveryMethod int

const (
	// MethodNone means no delivery method has been chosen yet.
	MethodNone DeliveryMethod = iota

	// MethodVolunteer means a delivery volunteer hands the order over.
	MethodVolunteer

	// MethodPost means the order is shipped by post.
	MethodPost

	// MethodCourier means the order is shipped by a courier company.
	MethodCourier
)

func deliveryMethodCodes() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{
		MethodNone:      "",
		MethodVolunteer: "volunteer",
		MethodPost:      "post",
		MethodCourier:   "courier",
	}
}

// DeliveryMethodFromCode parses a persisted or API delivery method code.
// The empty string parses to MethodNone.
func DeliveryMethodFromCode(code string) (DeliveryMethod, error) {
	for m, c := range deliveryMethodCodes() {
		if c == code {
			return m, nil
		}
	}
	return MethodNone, errs.NewValueIsInvalidErrorWithCause(
		"delivery method",
		fmt.Errorf("%q is not a valid delivery method", code),
	)
}

// String returns the wire code of the delivery method.
func (m DeliveryMethod) String() string {
	if code, ok := deliveryMethodCodes()[m]; ok {
		return code
	}
	return "unknown"
}

// Assignment is a value object binding the three delivery fields of an order
// together: delivery method, delivery volunteer reference, and the
// delivery-duty flag. The fields are only reachable through the constructors
// below, so the invariant
//
//	duty == true  <=>  volunteer != nil  <=>  method == volunteer
//
// holds for every Assignment that can exist. This replaces the pattern of
// updating three separate columns and hoping every call site keeps them in
// sync.
type Assignment struct {
	method      DeliveryMethod
	volunteerID *kernel.UUID
}

// Unassigned creates the empty assignment: no method, no volunteer, no duty.
func Unassigned() Assignment {
	return Assignment{method: MethodNone}
}

// AssignedTo creates a volunteer assignment. The volunteer ID must be valid.
func AssignedTo(volunteerID kernel.UUID) (Assignment, error) {
	if err := volunteerID.Validate(); err != nil {
		return Assignment{}, err
	}
	return Assignment{method: MethodVolunteer, volunteerID: &volunteerID}, nil
}

// ShippedBy creates a non-volunteer assignment (post or courier). The
// volunteer reference is always cleared for these methods.
func ShippedBy(method DeliveryMethod) (Assignment, error) {
	if method != MethodPost && method != MethodCourier {
		return Assignment{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery method",
			fmt.Errorf("%s cannot be set without a volunteer", method),
		)
	}
	return Assignment{method: method}, nil
}

// RestoreAssignment rebuilds an Assignment from persisted columns, rejecting
// rows where the three-field invariant was broken outside the application.
func RestoreAssignment(method DeliveryMethod, volunteerID *kernel.UUID, duty bool) (Assignment, error) {
	switch {
	case method == MethodVolunteer:
		if volunteerID == nil || !duty {
			return Assignment{}, errs.NewValueIsInvalidError("assignment: volunteer method without volunteer on duty")
		}
		return AssignedTo(*volunteerID)
	case volunteerID != nil || duty:
		return Assignment{}, errs.NewValueIsInvalidError("assignment: volunteer reference without volunteer method")
	case method == MethodNone:
		return Unassigned(), nil
	default:
		return ShippedBy(method)
	}
}

// Method returns the delivery method of the assignment.
func (a Assignment) Method() DeliveryMethod {
	return a.method
}

// VolunteerID returns the assigned delivery volunteer, or nil when the order
// has no volunteer on duty.
func (a Assignment) VolunteerID() *kernel.UUID {
	return a.volunteerID
}

// IsDuty reports whether a volunteer is actively assigned to deliver.
func (a Assignment) IsDuty() bool {
	return a.method == MethodVolunteer && a.volunteerID != nil
}

// IsAssignedTo reports whether the given volunteer is the active deliverer.
func (a Assignment) IsAssignedTo(volunteerID kernel.UUID) bool {
	return a.IsDuty() && a.volunteerID.IsEqual(volunteerID)
}
