// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Address: structured postal address with the delivery-area match key
//
// Value objects in this package are immutable and validated on construction.
// Aggregates in the order, volunteer, deliveryrequest and tracking packages
// build on these types rather than using raw strings or library types.
package kernel
