package results

import (
	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
)

// FilterFlights derives the filtered view of a generated batch. Empty
// stop and airline sets impose no restriction; the price range is
// inclusive on both ends. The input slice is never mutated.
func FilterFlights(flights []dto.Flight, filters dto.Filters) []dto.Flight {
	out := make([]dto.Flight, 0, len(flights))

	for _, flight := range flights {
		if len(filters.Stops) > 0 && !containsInt(filters.Stops, flight.Stops) {
			continue
		}

		if flight.Price < filters.PriceRange[0] || flight.Price > filters.PriceRange[1] {
			continue
		}

		if len(filters.Airlines) > 0 && !containsString(filters.Airlines, flight.Airline) {
			continue
		}

		out = append(out, flight)
	}

	return out
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}

	return false
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}

	return false
}
