package results

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func testFlights() []dto.Flight {
	return []dto.Flight{
		{ID: "FL1000", Airline: "IndiGo", Price: 4200, Stops: 0},
		{ID: "FL1001", Airline: "Air India", Price: 6100, Stops: 1},
		{ID: "FL1002", Airline: "Vistara", Price: 3900, Stops: 0},
		{ID: "FL1003", Airline: "IndiGo", Price: 7800, Stops: 2},
	}
}

func TestFilterFlights_Closure(t *testing.T) {
	filterRequest := func(flights []dto.Flight, filters dto.Filters, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterFlights(flights, filters)
			gotIDs := make([]string, len(got))
			for i, f := range got {
				gotIDs[i] = f.ID
			}

			diff := cmp.Diff(wantIDs, gotIDs)
			if diff != "" {
				t.Fatalf("FilterFlights result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	flights := testFlights()

	t.Run("default_filters", filterRequest(flights, dto.DefaultFilters(),
		[]string{"FL1000", "FL1001", "FL1002", "FL1003"}))
	t.Run("stops_membership", filterRequest(flights,
		dto.Filters{Stops: []int{0}, PriceRange: [2]int{0, dto.DefaultMaxPrice}},
		[]string{"FL1000", "FL1002"}))
	t.Run("price_range_inclusive", filterRequest(flights,
		dto.Filters{PriceRange: [2]int{3900, 6100}},
		[]string{"FL1000", "FL1001", "FL1002"}))
	t.Run("airline_membership", filterRequest(flights,
		dto.Filters{Airlines: []string{"IndiGo"}, PriceRange: [2]int{0, dto.DefaultMaxPrice}},
		[]string{"FL1000", "FL1003"}))
	t.Run("combined", filterRequest(flights,
		dto.Filters{Stops: []int{0, 1}, Airlines: []string{"IndiGo", "Air India"}, PriceRange: [2]int{0, 5000}},
		[]string{"FL1000"}))
	t.Run("no_match", filterRequest(flights,
		dto.Filters{PriceRange: [2]int{1, 2}}, []string{}))
}

func TestFilterFlights_EmptyStopsIsIdentity(t *testing.T) {
	flights := testFlights()

	unfiltered := FilterFlights(flights, dto.DefaultFilters())
	emptyStops := FilterFlights(flights, dto.Filters{Stops: []int{}, PriceRange: [2]int{0, dto.DefaultMaxPrice}})

	diff := cmp.Diff(unfiltered, emptyStops)
	assert.Empty(t, diff)
}

func TestFilterFlights_DoesNotMutateInput(t *testing.T) {
	flights := testFlights()
	snapshot := testFlights()

	FilterFlights(flights, dto.Filters{Stops: []int{2}, PriceRange: [2]int{0, 5000}})

	diff := cmp.Diff(snapshot, flights)
	assert.Empty(t, diff, "input must be left untouched")
}
