package catalog

import (
	"fmt"
	"strings"

	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/random"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/utils"
)

// BatchSize is the fixed number of flights fabricated per query.
const BatchSize = 15

const stopSurcharge = 500

var layoverNames = []string{"Via Dubai", "Via Singapore"}

// Generator fabricates candidate flights for an origin/destination pair.
// Every call produces a fresh random batch; there is no caching and no
// determinism beyond the injected random engine.
type Generator struct {
	rnd random.Rand
}

func NewGenerator(rnd random.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Flights generates a batch of BatchSize flights between two airports.
// Prices share a per-query base fare with per-flight variance and a per
// stop surcharge. After generation the lowest priced flight is tagged
// cheapest and the flight with the smallest leading duration hours is
// tagged fastest; when one flight wins both criteria the fastest tag
// wins, leaving the batch without a cheapest flight.
func (g *Generator) Flights(from, to dto.Airport) []dto.Flight {
	flights := make([]dto.Flight, BatchSize)
	basePrice := 3000 + g.rnd.Intn(5000)

	for i := range flights {
		carrier := airlines[g.rnd.Intn(len(airlines))]
		stops := g.pickStops()

		departureHour := 6 + g.rnd.Intn(16)
		durationHours := 2 + 2*stops + g.rnd.Intn(4)
		arrivalHour := (departureHour + durationHours) % 24

		flights[i] = dto.Flight{
			ID:            fmt.Sprintf("FL%d", 1000+i),
			Airline:       carrier.Name,
			AirlineLogo:   carrier.Logo,
			FlightNumber:  fmt.Sprintf("%s%d", strings.ToUpper(carrier.Name[:2]), 1000+g.rnd.Intn(9000)),
			From:          from,
			To:            to,
			DepartureTime: utils.FormatClock(departureHour, g.rnd.Intn(60)),
			ArrivalTime:   utils.FormatClock(arrivalHour, g.rnd.Intn(60)),
			Duration:      utils.FormatDuration(durationHours, g.rnd.Intn(60)),
			Stops:         stops,
			StopDetails:   layovers(stops),
			Price:         basePrice + g.rnd.Intn(3000) + stops*stopSurcharge,
			Seats:         10 + g.rnd.Intn(50),
		}
	}

	applyBadges(flights)

	return flights
}

// ~40% non-stop, ~30% one stop, ~30% two stops.
func (g *Generator) pickStops() int {
	if g.rnd.Float64() > 0.6 {
		return 0
	}

	if g.rnd.Float64() > 0.5 {
		return 1
	}

	return 2
}

func layovers(stops int) []string {
	if stops == 0 {
		return nil
	}

	return layoverNames[:stops]
}

func applyBadges(flights []dto.Flight) {
	if len(flights) == 0 {
		return
	}

	cheapest := 0
	fastest := 0

	for i, flight := range flights {
		if flight.Price < flights[cheapest].Price {
			cheapest = i
		}

		if utils.LeadingHours(flight.Duration) < utils.LeadingHours(flights[fastest].Duration) {
			fastest = i
		}
	}

	flights[cheapest].Badge = dto.BadgeCheapest
	flights[fastest].Badge = dto.BadgeFastest
}
