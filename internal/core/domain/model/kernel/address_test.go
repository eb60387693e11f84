package kernel_test

import (
	"testing"

	"coordinator/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestAddress_IsMatchable(t *testing.T) {
	tests := []struct {
		name    string
		address kernel.Address
		want    bool
	}{
		{
			name:    "all_required_fields_present",
			address: kernel.NewAddress("12B", "Kochi", "682001", "Kochi", "Ernakulam", "Kerala", "682001"),
			want:    true,
		},
		{
			name:    "missing_house_building",
			address: kernel.NewAddress("", "Kochi", "682001", "", "", "", ""),
			want:    false,
		},
		{
			name:    "missing_town",
			address: kernel.NewAddress("12B", "", "682001", "", "", "", ""),
			want:    false,
		},
		{
			name:    "missing_post_office",
			address: kernel.NewAddress("12B", "Kochi", "", "", "", "", ""),
			want:    false,
		},
		{
			name:    "whitespace_only_fields_are_empty",
			address: kernel.NewAddress("12B", "   ", "682001", "", "", "", ""),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.address.IsMatchable())
		})
	}
}

func TestAddress_MatchesDeliveryArea(t *testing.T) {
	orderAddr := kernel.NewAddress("12B", "Kochi", "682001", "", "", "", "")

	t.Run("exact_match", func(t *testing.T) {
		volunteerAddr := kernel.NewAddress("Flat 3", "Kochi", "682001", "", "", "", "")
		assert.True(t, orderAddr.MatchesDeliveryArea(volunteerAddr))
	})

	t.Run("match_is_case_insensitive", func(t *testing.T) {
		volunteerAddr := kernel.NewAddress("Flat 3", "KOCHI", "682001", "", "", "", "")
		assert.True(t, orderAddr.MatchesDeliveryArea(volunteerAddr))
	})

	t.Run("house_building_is_not_a_match_key", func(t *testing.T) {
		volunteerAddr := kernel.NewAddress("completely different house", "Kochi", "682001", "", "", "", "")
		assert.True(t, orderAddr.MatchesDeliveryArea(volunteerAddr))
	})

	t.Run("different_town_does_not_match", func(t *testing.T) {
		volunteerAddr := kernel.NewAddress("Flat 3", "Thrissur", "682001", "", "", "", "")
		assert.False(t, orderAddr.MatchesDeliveryArea(volunteerAddr))
	})

	t.Run("different_post_office_does_not_match", func(t *testing.T) {
		volunteerAddr := kernel.NewAddress("Flat 3", "Kochi", "680001", "", "", "", "")
		assert.False(t, orderAddr.MatchesDeliveryArea(volunteerAddr))
	})

	t.Run("unmatchable_order_address_matches_nothing", func(t *testing.T) {
		incomplete := kernel.NewAddress("", "Kochi", "682001", "", "", "", "")
		volunteerAddr := kernel.NewAddress("Flat 3", "Kochi", "682001", "", "", "", "")
		assert.False(t, incomplete.MatchesDeliveryArea(volunteerAddr))
	})
}
