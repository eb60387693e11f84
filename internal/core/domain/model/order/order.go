package order

import (
	"errors"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/pkg/errs"
	"coordinator/internal/pkg/guard"
)

// maxOrderQuantity bounds a single order; larger purchases go through the
// admin staff directly.
const maxOrderQuantity = 1000

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrCustomerPhoneIsRequired is returned when creating an order without a customer phone.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone")
	// ErrProductIsRequired is returned when creating an order without a product.
	ErrProductIsRequired = errs.NewValueIsRequiredError("product")
)

// Order is the aggregate root for a customer order. It owns the order_status
// and payment_status lifecycles and the delivery assignment, and is the only
// place where those may change.
//
// Invariants:
//   - must have a valid unique identifier
//   - quantity is in [1, maxOrderQuantity] and the total price is
//     quantity * unit price
//   - the delivery fields always satisfy the Assignment invariant
//   - status transitions follow the table in status.go
//   - orders are soft-deleted, never removed
type Order struct {
	id            kernel.UUID
	customerName  string
	customerPhone string
	product       string
	quantity      int
	unitPrice     int64
	paymentStatus PaymentStatus
	status        Status
	assignment    Assignment
	address       kernel.Address
	referredBy    *kernel.UUID

	// version is the optimistic-concurrency token used by the persistence
	// layer to serialize competing writes per order.
	version int

	deleted bool
	guard   guard.ConstructorGuard
}

// NewOrder creates a new Order at checkout. The order starts in
// payment_pending with payment status pending and no delivery assignment.
//
// referredBy optionally records the volunteer whose referral produced the
// order; it is distinct from the delivery volunteer.
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	product string,
	quantity int,
	unitPrice int64,
	address kernel.Address,
	referredBy *kernel.UUID,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, ErrCustomerNameIsRequired
	}
	if customerPhone == "" {
		return nil, ErrCustomerPhoneIsRequired
	}
	if product == "" {
		return nil, ErrProductIsRequired
	}
	if quantity < 1 || quantity > maxOrderQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxOrderQuantity)
	}
	if unitPrice <= 0 {
		return nil, errs.NewValueIsInvalidError("unit price")
	}
	if referredBy != nil {
		if err := referredBy.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		customerPhone: customerPhone,
		product:       product,
		quantity:      quantity,
		unitPrice:     unitPrice,
		paymentStatus: PaymentPending,
		status:        StatusPaymentPending,
		assignment:    Unassigned(),
		address:       address,
		referredBy:    referredBy,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. The persisted state is
// validated the same way NewOrder validates fresh input, so broken rows are
// surfaced instead of flowing through the domain.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	product string,
	quantity int,
	unitPrice int64,
	paymentStatus PaymentStatus,
	status Status,
	assignment Assignment,
	address kernel.Address,
	referredBy *kernel.UUID,
	version int,
	deleted bool,
) (*Order, error) {
	o, err := NewOrder(id, customerName, customerPhone, product, quantity, unitPrice, address, referredBy)
	if err != nil {
		return nil, err
	}
	if err = paymentStatus.Validate(); err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("order version")
	}

	o.paymentStatus = paymentStatus
	o.status = status
	o.assignment = assignment
	o.version = version
	o.deleted = deleted
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerName returns the customer contact name.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerPhone returns the customer contact phone.
func (o *Order) CustomerPhone() string { return o.customerPhone }

// Product returns the ordered product.
func (o *Order) Product() string { return o.product }

// Quantity returns the number of units (bottles) ordered.
func (o *Order) Quantity() int { return o.quantity }

// UnitPrice returns the fixed per-unit price.
func (o *Order) UnitPrice() int64 { return o.unitPrice }

// TotalPrice returns quantity times unit price.
func (o *Order) TotalPrice() int64 { return int64(o.quantity) * o.unitPrice }

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Assignment returns the current delivery assignment.
func (o *Order) Assignment() Assignment { return o.assignment }

// Address returns the delivery address.
func (o *Order) Address() kernel.Address { return o.address }

// ReferredBy returns the referral volunteer, or nil.
func (o *Order) ReferredBy() *kernel.UUID { return o.referredBy }

// Version returns the optimistic-concurrency token of the loaded aggregate.
func (o *Order) Version() int { return o.version }

// IsDeleted reports whether the order was soft-deleted.
func (o *Order) IsDeleted() bool { return o.deleted }

// MarkPaid records a customer payment and moves the order to ordered.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.TransitionTo(StatusOrdered)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.paymentStatus = PaymentPaid
	return nil
}

// VerifyPayment records the admin staff's payment verification.
func (o *Order) VerifyPayment() error {
	if o.paymentStatus != PaymentPaid {
		return errs.NewInvalidStateError("order payment", o.paymentStatus.String())
	}
	o.paymentStatus = PaymentVerified
	return nil
}

// Confirm moves the order to confirmed, making it eligible for delivery.
func (o *Order) Confirm() error {
	newStatus, err := o.status.TransitionTo(StatusConfirmed)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver marks the order delivered. Only valid from confirmed; an already
// delivered order reports InvalidState, so there is no re-delivery.
func (o *Order) Deliver() error {
	newStatus, err := o.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// CantReach records a failed delivery attempt.
func (o *Order) CantReach() error {
	newStatus, err := o.status.TransitionTo(StatusCantReach)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Reschedule moves a failed delivery back into the queue.
func (o *Order) Reschedule() error {
	newStatus, err := o.status.TransitionTo(StatusRescheduled)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel cancels the order from any non-terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AssignVolunteer puts the given volunteer on delivery duty. Writing the
// volunteer reference, the duty flag and the volunteer delivery method is a
// single operation through the Assignment value object.
func (o *Order) AssignVolunteer(volunteerID kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String())
	}
	assignment, err := AssignedTo(volunteerID)
	if err != nil {
		return err
	}
	o.assignment = assignment
	return nil
}

// AssignShipping sets a non-volunteer delivery method (post or courier),
// clearing any volunteer reference.
func (o *Order) AssignShipping(method DeliveryMethod) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String())
	}
	assignment, err := ShippedBy(method)
	if err != nil {
		return err
	}
	o.assignment = assignment
	return nil
}

// ClearAssignment removes any delivery assignment; all three delivery fields
// are cleared together.
func (o *Order) ClearAssignment() {
	o.assignment = Unassigned()
}

// SoftDelete hides the order from reads. The row is never removed.
func (o *Order) SoftDelete() {
	o.deleted = true
}
