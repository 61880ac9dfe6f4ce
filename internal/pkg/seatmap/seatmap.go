package seatmap

import (
	"fmt"

	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/random"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/utils"
)

const (
	Rows        = 20
	premiumRows = 3

	PremiumSeatPrice  = 500
	StandardSeatPrice = 200
)

var columns = []string{"A", "B", "C", "D", "E", "F"}

// Generate fabricates a fresh seat map for the details page. Rows 1-3
// are premium priced, occupancy is drawn at random on every visit and
// never persisted.
func Generate(rnd random.Rand) []dto.SeatMapSeat {
	seats := make([]dto.SeatMapSeat, 0, Rows*len(columns))

	for row := 1; row <= Rows; row++ {
		for _, col := range columns {
			premium := row <= premiumRows
			occupied := rnd.Float64() > 0.6

			status := dto.SeatStatusAvailable
			if occupied {
				status = dto.SeatStatusOccupied
			} else if premium {
				status = dto.SeatStatusPremium
			}

			price := StandardSeatPrice
			if premium {
				price = PremiumSeatPrice
			}

			seats = append(seats, dto.SeatMapSeat{
				Row:    row,
				Column: col,
				Status: status,
				Price:  price,
			})
		}
	}

	return seats
}

// SeatID renders the canonical identifier for a seat, e.g. "12C".
func SeatID(seat dto.SeatMapSeat) string {
	return fmt.Sprintf("%d%s", seat.Row, seat.Column)
}

// Price totals the selected seat identifiers. The row is read from the
// leading digits of the ID; premium pricing applies to rows 1-3.
func Price(seatIDs []string) int {
	total := 0
	for _, id := range seatIDs {
		if utils.LeadingRow(id) <= premiumRows {
			total += PremiumSeatPrice
		} else {
			total += StandardSeatPrice
		}
	}

	return total
}
