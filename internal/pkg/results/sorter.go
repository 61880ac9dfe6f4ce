package results

import (
	"sort"

	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/utils"
)

// SortFlights orders a results view by the chosen criterion, ascending.
// Duration ranks by the leading hour digits only, matching the ranking
// the badge derivation uses. The input slice is never mutated; callers
// always get a fresh ordering over copied elements.
func SortFlights(flights []dto.Flight, sortBy string) []dto.Flight {
	out := make([]dto.Flight, len(flights))
	copy(out, flights)

	switch sortBy {
	case dto.SortByDuration:
		sort.SliceStable(out, func(i, j int) bool {
			return utils.LeadingHours(out[i].Duration) < utils.LeadingHours(out[j].Duration)
		})
	case dto.SortByDeparture:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DepartureTime < out[j].DepartureTime
		})
	default:
		// price
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	}

	return out
}
