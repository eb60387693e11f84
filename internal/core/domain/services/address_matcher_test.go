package services_test

import (
	"testing"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/volunteer"
	"coordinator/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeVolunteer(t *testing.T, code, town, postOffice string, active bool) *volunteer.Volunteer {
	t.Helper()
	addr := kernel.NewAddress("Flat 1", town, postOffice, "", "", "", "")
	v, err := volunteer.NewVolunteer(kernel.NewUUID(), code, "Vol "+code, "9876543210", "", addr, 50, active)
	require.NoError(t, err)
	return v
}

func TestAddressMatcher_Match(t *testing.T) {
	matcher := services.NewAddressMatcher()
	orderAddr := kernel.NewAddress("12B", "Kochi", "682001", "", "", "", "")

	t.Run("single_candidate", func(t *testing.T) {
		vols := []*volunteer.Volunteer{
			makeVolunteer(t, "V1", "Kochi", "682001", true),
			makeVolunteer(t, "V2", "Thrissur", "680001", true),
		}

		matched := matcher.Match(orderAddr, vols)

		require.Len(t, matched, 1)
		assert.Equal(t, "V1", matched[0].Code())
	})

	t.Run("multiple_candidates", func(t *testing.T) {
		vols := []*volunteer.Volunteer{
			makeVolunteer(t, "V1", "Kochi", "682001", true),
			makeVolunteer(t, "V2", "KOCHI", "682001", true),
		}

		matched := matcher.Match(orderAddr, vols)

		assert.Len(t, matched, 2)
	})

	t.Run("no_candidates", func(t *testing.T) {
		vols := []*volunteer.Volunteer{
			makeVolunteer(t, "V1", "Thrissur", "680001", true),
		}

		assert.Empty(t, matcher.Match(orderAddr, vols))
	})

	t.Run("inactive_volunteers_are_skipped", func(t *testing.T) {
		pending := makeVolunteer(t, "V1", "Kochi", "682001", false)
		suspended := makeVolunteer(t, "V2", "Kochi", "682001", true)
		require.NoError(t, suspended.Suspend())

		assert.Empty(t, matcher.Match(orderAddr, []*volunteer.Volunteer{pending, suspended}))
	})

	t.Run("incomplete_order_address_matches_nothing", func(t *testing.T) {
		incomplete := kernel.NewAddress("", "Kochi", "682001", "", "", "", "")
		vols := []*volunteer.Volunteer{
			makeVolunteer(t, "V1", "Kochi", "682001", true),
		}

		assert.Empty(t, matcher.Match(incomplete, vols))
	})

	t.Run("nil_and_unconstructed_volunteers_are_skipped", func(t *testing.T) {
		vols := []*volunteer.Volunteer{nil, {}}

		assert.Empty(t, matcher.Match(orderAddr, vols))
	})
}
