// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate owns three closely related concerns:
//   - the order_status lifecycle (Status), expressed as an explicit transition
//     table so illegal transitions are rejected centrally
//   - the payment_status lifecycle (PaymentStatus)
//   - the delivery assignment (Assignment), a value object that binds the
//     delivery method, the delivery volunteer reference and the delivery-duty
//     flag together so no code path can ever set them inconsistently
//
// Orders are never physically deleted; a soft-delete flag hides them from
// reads. Every mutation bumps the aggregate version, which the persistence
// layer uses for optimistic concurrency (a stale write is reported as a
// conflict instead of silently overwriting a concurrent assignment).
package order
