package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/catalog"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/random"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/results"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/seatmap"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/session"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/utils"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/wizard"
)

const (
	taxRatePercent  = 12
	convenienceFee  = 150
	cancellationFee = 2000
)

const pnrAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const cancelMessage = "Booking cancelled successfully! Refund will be processed in 5-7 business days."

// BookingService drives the booking wizard: it owns no state of its own
// and funnels every mutation through the session store and the
// centralized step guards.
type BookingService struct {
	Sessions        *session.Manager
	Catalog         *catalog.Generator
	Rnd             random.Rand
	ProcessingDelay time.Duration
}

func NewBookingService(sessions *session.Manager, gen *catalog.Generator,
	rnd random.Rand, processingDelay time.Duration) *BookingService {
	return &BookingService{
		Sessions:        sessions,
		Catalog:         gen,
		Rnd:             rnd,
		ProcessingDelay: processingDelay,
	}
}

// StartSession opens a fresh booking session at the landing step.
func (s *BookingService) StartSession(_ context.Context) (dto.SessionState, error) {
	return s.Sessions.Create().Snapshot(), nil
}

func (s *BookingService) Session(_ context.Context, sessionID string) (dto.SessionState, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.SessionState{}, fmt.Errorf("get session: %w", err)
	}

	return sess.Snapshot(), nil
}

// Navigate performs an explicit step change. The guard table decides
// whether the target is reachable from the current session state.
func (s *BookingService) Navigate(ctx context.Context, sessionID, step string) (dto.SessionState, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.SessionState{}, fmt.Errorf("get session: %w", err)
	}

	target, err := wizard.ParseStep(step)
	if err != nil {
		return dto.SessionState{}, fmt.Errorf("parse step: %w", err)
	}

	if err := sess.Advance(target); err != nil {
		slog.WarnContext(ctx, "navigation rejected",
			slog.String("from", string(sess.CurrentStep())),
			slog.String("to", step))

		return dto.SessionState{}, fmt.Errorf("advance wizard: %w", err)
	}

	return sess.Snapshot(), nil
}

// SearchFlights replaces the search parameters, generates a fresh batch
// for the origin/destination pair and advances to the results step. With
// origin, destination or departure date missing the guard rejects the
// transition and the wizard stays on search.
func (s *BookingService) SearchFlights(ctx context.Context, sessionID string,
	params dto.SearchParams) (dto.ResultsResponse, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.ResultsResponse{}, fmt.Errorf("get session: %w", err)
	}

	sess.SetSearchParams(params)

	if err := sess.Advance(wizard.StepResults); err != nil {
		return dto.ResultsResponse{}, fmt.Errorf("advance wizard: %w", err)
	}

	flights := s.Catalog.Flights(*params.From, *params.To)
	sess.SetFlights(flights)
	sess.SetSelectedFlight(nil)

	slog.DebugContext(ctx, "generated flight batch",
		slog.String("from", params.From.Code),
		slog.String("to", params.To.Code),
		slog.Int("flights", len(flights)))

	return s.resultsView(sess), nil
}

// Results applies new filter/sort settings when given and returns the
// derived view of the current batch. It never regenerates flights.
func (s *BookingService) Results(_ context.Context, req dto.ResultsRequest) (dto.ResultsResponse, error) {
	sess, err := s.Sessions.Get(req.SessionID)
	if err != nil {
		return dto.ResultsResponse{}, fmt.Errorf("get session: %w", err)
	}

	if req.Filters != nil {
		sess.SetFilters(*req.Filters)
	}

	if req.SortBy != "" {
		sess.SetSortBy(req.SortBy)
	}

	return s.resultsView(sess), nil
}

func (s *BookingService) resultsView(sess *session.Session) dto.ResultsResponse {
	view := results.SortFlights(results.FilterFlights(sess.Flights(), sess.Filters()), sess.SortBy())

	return dto.ResultsResponse{
		SearchParams: sess.SearchParams(),
		TotalResults: len(view),
		SortBy:       sess.SortBy(),
		Flights:      view,
	}
}

// SelectFlight picks a flight from the current batch and advances to the
// details step.
func (s *BookingService) SelectFlight(_ context.Context, sessionID, flightID string) (dto.SessionState, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.SessionState{}, fmt.Errorf("get session: %w", err)
	}

	var selected *dto.Flight
	for _, flight := range sess.Flights() {
		if flight.ID == flightID {
			f := flight
			selected = &f
			break
		}
	}

	if selected == nil {
		return dto.SessionState{}, ErrFlightNotFound
	}

	sess.SetSelectedFlight(selected)

	if err := sess.Advance(wizard.StepDetails); err != nil {
		return dto.SessionState{}, fmt.Errorf("advance wizard: %w", err)
	}

	return sess.Snapshot(), nil
}

// SeatMap fabricates a fresh random seat map for the selected flight.
// Occupancy is rolled anew on every visit; only the chosen seat IDs
// survive in the session.
func (s *BookingService) SeatMap(_ context.Context, sessionID string) (dto.SeatMapResponse, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.SeatMapResponse{}, fmt.Errorf("get session: %w", err)
	}

	if !sess.FlightSelected() {
		return dto.SeatMapResponse{}, ErrNoFlightSelected
	}

	seats := seatmap.Generate(s.Rnd)
	chosen := sess.SelectedSeats()

	for i, seat := range seats {
		if seat.Status == dto.SeatStatusOccupied {
			continue
		}

		for _, id := range chosen {
			if seatmap.SeatID(seat) == id {
				seats[i].Status = dto.SeatStatusSelected
			}
		}
	}

	return dto.SeatMapResponse{
		SeatMap:       seats,
		SelectedSeats: chosen,
		SeatTotal:     seatmap.Price(chosen),
	}, nil
}

// SelectSeats replaces the chosen seats wholesale.
func (s *BookingService) SelectSeats(_ context.Context, sessionID string, seats []string) (dto.SeatMapResponse, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.SeatMapResponse{}, fmt.Errorf("get session: %w", err)
	}

	if !sess.FlightSelected() {
		return dto.SeatMapResponse{}, ErrNoFlightSelected
	}

	sess.SetSelectedSeats(seats)

	return dto.SeatMapResponse{
		SelectedSeats: seats,
		SeatTotal:     seatmap.Price(seats),
	}, nil
}

// SubmitPassengers stores the roster and advances to payment. A roster
// with any required field missing on any passenger is rejected as a
// whole and the wizard stays on the passengers step.
func (s *BookingService) SubmitPassengers(_ context.Context, sessionID string,
	passengers []dto.PassengerDetails) (dto.SessionState, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.SessionState{}, fmt.Errorf("get session: %w", err)
	}

	if err := dto.ValidatePassengers(passengers); err != nil {
		return dto.SessionState{}, fmt.Errorf("validate passengers: %w", err)
	}

	sess.SetPassengers(passengers)

	if err := sess.Advance(wizard.StepPayment); err != nil {
		return dto.SessionState{}, fmt.Errorf("advance wizard: %w", err)
	}

	return sess.Snapshot(), nil
}

// Fare computes the payment page breakdown for the selected flight:
// base fare, chosen seats, 12% taxes rounded down and a fixed
// convenience fee.
func (s *BookingService) Fare(_ context.Context, sessionID string) (dto.FareBreakdown, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.FareBreakdown{}, fmt.Errorf("get session: %w", err)
	}

	flight := sess.SelectedFlight()
	if flight == nil {
		return dto.FareBreakdown{}, ErrNoFlightSelected
	}

	return fareFor(flight.Price, sess.SelectedSeats()), nil
}

func fareFor(basePrice int, seats []string) dto.FareBreakdown {
	seatTotal := seatmap.Price(seats)
	taxes := basePrice * taxRatePercent / 100
	total := basePrice + seatTotal + taxes + convenienceFee

	return dto.FareBreakdown{
		BaseFare:       basePrice,
		SeatTotal:      seatTotal,
		Taxes:          taxes,
		ConvenienceFee: convenienceFee,
		Total:          total,
		TotalFormatted: utils.FormatINR(int64(total)),
	}
}

// Pay runs the simulated payment, appends the booking to the ledger and
// advances to confirmation. The processing delay is the only
// asynchronous boundary in the flow; it has no failure path.
func (s *BookingService) Pay(ctx context.Context, sessionID, method string) (dto.PaymentResponse, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("get session: %w", err)
	}

	flight := sess.SelectedFlight()
	if flight == nil {
		return dto.PaymentResponse{}, ErrNoFlightSelected
	}

	if err := wizard.Transition(sess, wizard.StepPayment); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("payment preconditions: %w", err)
	}

	// Simulated gateway round trip. Always succeeds.
	time.Sleep(s.ProcessingDelay)

	fare := fareFor(flight.Price, sess.SelectedSeats())

	booking := dto.Booking{
		ID:          fmt.Sprintf("BK%d", time.Now().UnixMilli()),
		PNR:         s.generatePNR(),
		Flight:      *flight,
		Passengers:  sess.Passengers(),
		TotalPrice:  fare.Total,
		BookingDate: time.Now().UTC().Format(time.RFC3339),
		Status:      dto.BookingStatusConfirmed,
	}

	sess.AddBooking(booking)

	if err := sess.Advance(wizard.StepConfirmation); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("advance wizard: %w", err)
	}

	slog.InfoContext(ctx, "booking confirmed",
		slog.String("booking_id", booking.ID),
		slog.String("pnr", booking.PNR),
		slog.String("method", method),
		slog.Int("total", booking.TotalPrice))

	return dto.PaymentResponse{Booking: booking, Fare: fare}, nil
}

func (s *BookingService) generatePNR() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = pnrAlphabet[s.Rnd.Intn(len(pnrAlphabet))]
	}

	return "PNR" + string(code)
}

// Bookings returns the ledger snapshot in insertion order.
func (s *BookingService) Bookings(_ context.Context, sessionID string) (dto.BookingsResponse, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.BookingsResponse{}, fmt.Errorf("get session: %w", err)
	}

	return dto.BookingsResponse{Bookings: sess.Bookings()}, nil
}

// CancelBooking produces the cancellation receipt for a confirmed
// booking: a fixed fee is deducted from the displayed refund. The ledger
// entry itself is never rewritten; the cancelled status lives only in
// the returned receipt, mirroring the display-local cancellation of the
// original flow.
func (s *BookingService) CancelBooking(ctx context.Context, sessionID, bookingID string) (dto.CancelBookingResponse, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return dto.CancelBookingResponse{}, fmt.Errorf("get session: %w", err)
	}

	var found *dto.Booking
	for _, booking := range sess.Bookings() {
		if booking.ID == bookingID {
			b := booking
			found = &b
			break
		}
	}

	if found == nil {
		return dto.CancelBookingResponse{}, ErrBookingNotFound
	}

	if found.Status != dto.BookingStatusConfirmed {
		return dto.CancelBookingResponse{}, ErrBookingNotCancellable
	}

	shown := *found
	shown.Status = dto.BookingStatusCancelled
	refund := shown.TotalPrice - cancellationFee

	slog.InfoContext(ctx, "booking cancellation shown",
		slog.String("booking_id", shown.ID),
		slog.Int("refund", refund))

	return dto.CancelBookingResponse{
		Booking:         shown,
		CancellationFee: cancellationFee,
		RefundAmount:    refund,
		RefundFormatted: utils.FormatINR(int64(refund)),
		Message:         cancelMessage,
	}, nil
}
