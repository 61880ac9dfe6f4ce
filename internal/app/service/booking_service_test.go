//go:build unit

package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/catalog"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/random"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := dto.InitValidator(); err != nil {
		panic(err)
	}
}

func newTestService(seed int64) *BookingService {
	rnd := random.NewSeeded(seed)
	return NewBookingService(session.NewManager(), catalog.NewGenerator(rnd), rnd, 0)
}

func testSearchParams(t *testing.T) dto.SearchParams {
	t.Helper()

	from, ok := catalog.AirportByCode("DEL")
	require.True(t, ok)
	to, ok := catalog.AirportByCode("BOM")
	require.True(t, ok)

	return dto.SearchParams{
		From:          &from,
		To:            &to,
		DepartureDate: "2026-09-15",
		Passengers:    dto.PassengerCount{Adults: 1},
		TravelClass:   dto.TravelClassEconomy,
		TripType:      dto.TripTypeOneWay,
	}
}

func testPassengers() []dto.PassengerDetails {
	return []dto.PassengerDetails{{
		FirstName:   "Asha",
		LastName:    "Verma",
		Gender:      "Female",
		DateOfBirth: "1990-04-12",
		Email:       "asha.verma@example.com",
		Phone:       "+919876543210",
	}}
}

func TestBookingService_FullFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, state.SessionID)
	assert.Equal(t, "landing", state.CurrentStep)

	sessionID := state.SessionID

	results, err := svc.SearchFlights(ctx, sessionID, testSearchParams(t))
	require.NoError(t, err)
	require.Len(t, results.Flights, catalog.BatchSize)
	assert.Equal(t, dto.SortByPrice, results.SortBy)

	// default sort is price ascending
	for i := 1; i < len(results.Flights); i++ {
		assert.LessOrEqual(t, results.Flights[i-1].Price, results.Flights[i].Price)
	}

	chosen := results.Flights[0]

	state, err = svc.SelectFlight(ctx, sessionID, chosen.ID)
	require.NoError(t, err)
	assert.Equal(t, "details", state.CurrentStep)
	require.NotNil(t, state.SelectedFlight)
	assert.Equal(t, chosen.ID, state.SelectedFlight.ID)

	seatMap, err := svc.SeatMap(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, seatMap.SeatMap, 120)

	_, err = svc.SelectSeats(ctx, sessionID, []string{"1A", "10B"})
	require.NoError(t, err)

	state, err = svc.SubmitPassengers(ctx, sessionID, testPassengers())
	require.NoError(t, err)
	assert.Equal(t, "payment", state.CurrentStep)

	fare, err := svc.Fare(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, chosen.Price, fare.BaseFare)
	assert.Equal(t, 700, fare.SeatTotal)
	assert.Equal(t, chosen.Price*12/100, fare.Taxes)
	assert.Equal(t, 150, fare.ConvenienceFee)
	assert.Equal(t, chosen.Price+700+chosen.Price*12/100+150, fare.Total)

	payment, err := svc.Pay(ctx, sessionID, "upi")
	require.NoError(t, err)
	assert.Equal(t, dto.BookingStatusConfirmed, payment.Booking.Status)
	assert.Equal(t, fare.Total, payment.Booking.TotalPrice)
	assert.Regexp(t, regexp.MustCompile(`^BK\d+$`), payment.Booking.ID)
	assert.Regexp(t, regexp.MustCompile(`^PNR[0-9A-Z]{6}$`), payment.Booking.PNR)

	state, err = svc.Session(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "confirmation", state.CurrentStep)
	assert.Equal(t, 1, state.BookingCount)

	ledger, err := svc.Bookings(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, ledger.Bookings, 1)
	assert.Equal(t, payment.Booking.ID, ledger.Bookings[0].ID)
}

func TestBookingService_SearchGuardKeepsStep(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	incomplete := testSearchParams(t)
	incomplete.DepartureDate = ""

	_, err = svc.SearchFlights(ctx, state.SessionID, incomplete)
	assert.Error(t, err)

	after, err := svc.Session(ctx, state.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, "results", after.CurrentStep)
}

func TestBookingService_ResultsNeverRegenerates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	first, err := svc.SearchFlights(ctx, state.SessionID, testSearchParams(t))
	require.NoError(t, err)

	again, err := svc.Results(ctx, dto.ResultsRequest{
		SessionRequest: dto.SessionRequest{SessionID: state.SessionID},
	})
	require.NoError(t, err)

	assert.Equal(t, first.Flights, again.Flights)
}

func TestBookingService_ResultsAppliesFilterAndSort(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SearchFlights(ctx, state.SessionID, testSearchParams(t))
	require.NoError(t, err)

	filters := dto.DefaultFilters()
	filters.Stops = []int{0}

	view, err := svc.Results(ctx, dto.ResultsRequest{
		SessionRequest: dto.SessionRequest{SessionID: state.SessionID},
		Filters:        &filters,
		SortBy:         dto.SortByDeparture,
	})
	require.NoError(t, err)

	assert.Equal(t, dto.SortByDeparture, view.SortBy)
	assert.Equal(t, len(view.Flights), view.TotalResults)
	for _, flight := range view.Flights {
		assert.Zero(t, flight.Stops)
	}
	for i := 1; i < len(view.Flights); i++ {
		assert.LessOrEqual(t, view.Flights[i-1].DepartureTime, view.Flights[i].DepartureTime)
	}
}

func TestBookingService_SelectUnknownFlight(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SearchFlights(ctx, state.SessionID, testSearchParams(t))
	require.NoError(t, err)

	_, err = svc.SelectFlight(ctx, state.SessionID, "FL9999")
	assert.True(t, errors.Is(err, ErrFlightNotFound))
}

func TestBookingService_SeatMapRequiresSelection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SeatMap(ctx, state.SessionID)
	assert.True(t, errors.Is(err, ErrNoFlightSelected))
}

func TestBookingService_IncompletePassengersRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	results, err := svc.SearchFlights(ctx, state.SessionID, testSearchParams(t))
	require.NoError(t, err)

	_, err = svc.SelectFlight(ctx, state.SessionID, results.Flights[0].ID)
	require.NoError(t, err)

	broken := testPassengers()
	broken[0].Email = ""

	_, err = svc.SubmitPassengers(ctx, state.SessionID, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please fill in all required fields for all passengers")

	after, err := svc.Session(ctx, state.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, "payment", after.CurrentStep)
}

func TestFareFor(t *testing.T) {
	fare := func(basePrice int, seats []string, want dto.FareBreakdown) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, fareFor(basePrice, seats))
		}
	}

	t.Run("no_seats", fare(5000, nil, dto.FareBreakdown{
		BaseFare:       5000,
		SeatTotal:      0,
		Taxes:          600,
		ConvenienceFee: 150,
		Total:          5750,
		TotalFormatted: "₹5,750",
	}))
	t.Run("mixed_seats", fare(5000, []string{"1A", "10B"}, dto.FareBreakdown{
		BaseFare:       5000,
		SeatTotal:      700,
		Taxes:          600,
		ConvenienceFee: 150,
		Total:          6450,
		TotalFormatted: "₹6,450",
	}))
	t.Run("taxes_round_down", fare(3333, nil, dto.FareBreakdown{
		BaseFare:       3333,
		SeatTotal:      0,
		Taxes:          399,
		ConvenienceFee: 150,
		Total:          3882,
		TotalFormatted: "₹3,882",
	}))
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)
	sessionID := state.SessionID

	results, err := svc.SearchFlights(ctx, sessionID, testSearchParams(t))
	require.NoError(t, err)
	_, err = svc.SelectFlight(ctx, sessionID, results.Flights[0].ID)
	require.NoError(t, err)
	_, err = svc.SubmitPassengers(ctx, sessionID, testPassengers())
	require.NoError(t, err)
	payment, err := svc.Pay(ctx, sessionID, "card")
	require.NoError(t, err)

	receipt, err := svc.CancelBooking(ctx, sessionID, payment.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.BookingStatusCancelled, receipt.Booking.Status)
	assert.Equal(t, 2000, receipt.CancellationFee)
	assert.Equal(t, payment.Booking.TotalPrice-2000, receipt.RefundAmount)
	assert.Contains(t, receipt.Message, "cancelled successfully")

	// the receipt is display only; the ledger entry stays confirmed
	ledger, err := svc.Bookings(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, ledger.Bookings, 1)
	assert.Equal(t, dto.BookingStatusConfirmed, ledger.Bookings[0].Status)
}

func TestBookingService_CancelUnknownBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, state.SessionID, "BK0")
	assert.True(t, errors.Is(err, ErrBookingNotFound))
}

func TestBookingService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	_, err := svc.Session(ctx, "no-such-session")
	assert.True(t, errors.Is(err, session.ErrNotFound))
}

func TestBookingService_NavigateRejectsUnknownStep(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(42)

	state, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.Navigate(ctx, state.SessionID, "checkout")
	assert.Error(t, err)
}
