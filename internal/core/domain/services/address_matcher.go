package services

import (
	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/volunteer"
)

// AddressMatcher finds the volunteers able to deliver to an address.
//
// Matching is an exact, case-insensitive comparison of the (town, post office)
// pair between the order's delivery address and each volunteer's registered
// address. House/building is required on the order side for context but is
// not part of the match key, and matching is never fuzzy.
//
// The matcher returns zero, one or many candidates. Automatic assignment only
// acts on exactly one; everything else is left to the admin.
type AddressMatcher struct{}

// NewAddressMatcher creates a new AddressMatcher.
func NewAddressMatcher() AddressMatcher {
	return AddressMatcher{}
}

// Match returns the active volunteers whose registered delivery area matches
// the given order address. Returns an empty slice when the order address is
// missing any of the required house/town/post-office fields.
func (m AddressMatcher) Match(orderAddress kernel.Address, volunteers []*volunteer.Volunteer) []*volunteer.Volunteer {
	matched := make([]*volunteer.Volunteer, 0)
	if !orderAddress.IsMatchable() {
		return matched
	}

	for _, v := range volunteers {
		if v == nil || v.Validate() != nil {
			continue
		}
		if !v.CanDeliver() {
			continue
		}
		if orderAddress.MatchesDeliveryArea(v.Address()) {
			matched = append(matched, v)
		}
	}

	return matched
}
