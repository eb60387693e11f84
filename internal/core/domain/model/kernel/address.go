package kernel

import "strings"

// Address is a value object holding the structured postal address fields used
// by both orders (delivery destination) and volunteers (registered delivery
// area).
//
// Addresses are intentionally permissive: an order may be placed with a
// partially filled address, in which case it simply never participates in
// automatic delivery matching. The match key for the delivery area is the
// (town, post office) pair, compared case-insensitively; the house/building
// field is informational context only and never part of the key.
type Address struct {
	houseBuilding string
	town          string
	postOffice    string
	city          string
	district      string
	state         string
	pincode       string
}

// NewAddress creates an Address from its raw fields. Fields are stored with
// surrounding whitespace trimmed; no field is required at construction time.
func NewAddress(houseBuilding, town, postOffice, city, district, state, pincode string) Address {
	return Address{
		houseBuilding: strings.TrimSpace(houseBuilding),
		town:          strings.TrimSpace(town),
		postOffice:    strings.TrimSpace(postOffice),
		city:          strings.TrimSpace(city),
		district:      strings.TrimSpace(district),
		state:         strings.TrimSpace(state),
		pincode:       strings.TrimSpace(pincode),
	}
}

// HouseBuilding returns the house/building field.
func (a Address) HouseBuilding() string { return a.houseBuilding }

// Town returns the town field.
func (a Address) Town() string { return a.town }

// PostOffice returns the post office field.
func (a Address) PostOffice() string { return a.postOffice }

// City returns the city field.
func (a Address) City() string { return a.city }

// District returns the district field.
func (a Address) District() string { return a.district }

// State returns the state field.
func (a Address) State() string { return a.state }

// Pincode returns the pincode field.
func (a Address) Pincode() string { return a.pincode }

// IsMatchable reports whether the address carries all three fields required
// for delivery matching: house/building, town and post office.
func (a Address) IsMatchable() bool {
	return a.houseBuilding != "" && a.town != "" && a.postOffice != ""
}

// MatchesDeliveryArea reports whether two addresses fall in the same delivery
// area. The comparison is an exact, case-insensitive match on town and post
// office. Matching is never fuzzy, and an address missing any required field
// matches nothing.
func (a Address) MatchesDeliveryArea(other Address) bool {
	if !a.IsMatchable() || other.town == "" || other.postOffice == "" {
		return false
	}
	return strings.EqualFold(a.town, other.town) &&
		strings.EqualFold(a.postOffice, other.postOffice)
}
