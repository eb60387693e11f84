// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates.
//
// AddressMatcher decides which active volunteers can deliver an order based on
// the order's delivery address and the volunteers' registered delivery areas.
// It is a pure function over its inputs: no side effects, no persistence.
package services
