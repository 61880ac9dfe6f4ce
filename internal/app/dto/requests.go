package dto

import (
	"fmt"
	"net/http"

	"github.com/skyfare/flight-booking-wizard/internal/pkg/exception"
)

// SearchParams is both the search form payload and the session state it
// replaces wholesale. From, to and departure date gate the transition to
// the results step.
type SearchParams struct {
	From          *Airport       `json:"from" validate:"required"`
	To            *Airport       `json:"to" validate:"required"`
	DepartureDate string         `json:"departure_date" validate:"required"`
	ReturnDate    *string        `json:"return_date,omitempty"`
	Passengers    PassengerCount `json:"passengers"`
	TravelClass   string         `json:"travel_class" validate:"required,oneof='Economy' 'Premium Economy' 'Business' 'First Class'"`
	TripType      string         `json:"trip_type" validate:"required,oneof=one-way round-trip"`
}

func (s *SearchParams) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchParams) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.BadRequest(err.Error())
	}

	if s.From != nil && s.To != nil && s.From.Code == s.To.Code {
		return exception.BadRequest("origin and destination must be different airports")
	}

	return nil
}

// TotalPassengers is the roster size the passenger form works towards.
func (s *SearchParams) TotalPassengers() int {
	return s.Passengers.Adults + s.Passengers.Children + s.Passengers.Infants
}

// SessionRequest identifies the booking session addressed by a request.
// The ID travels in the URL, never in the body.
type SessionRequest struct {
	SessionID string `json:"-"`
}

func (s *SessionRequest) Bind(_ *http.Request) error {
	return nil
}

type NavigateRequest struct {
	SessionRequest
	Step string `json:"step" validate:"required"`
}

func (n *NavigateRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(n); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}

type SearchRequest struct {
	SessionRequest
	SearchParams
}

func (s *SearchRequest) Bind(r *http.Request) error {
	return s.SearchParams.Bind(r)
}

type ResultsRequest struct {
	SessionRequest
	Filters *Filters `json:"filters,omitempty"`
	SortBy  string   `json:"sort_by,omitempty"`
}

func (q *ResultsRequest) Bind(_ *http.Request) error {
	if q.SortBy != "" && !AllowedSortBy[q.SortBy] {
		return exception.BadRequest(fmt.Sprintf("Invalid sort field %s", q.SortBy))
	}

	if q.Filters != nil && q.Filters.PriceRange[1] < q.Filters.PriceRange[0] {
		return exception.BadRequest("price range upper bound must not be below lower bound")
	}

	return nil
}

type SelectFlightRequest struct {
	SessionRequest
	FlightID string `json:"-"`
}

type SeatsRequest struct {
	SessionRequest
	Seats []string `json:"seats" validate:"dive,required"`
}

func (s *SeatsRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(s); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}

type PassengersRequest struct {
	SessionRequest
	Passengers []PassengerDetails `json:"passengers" validate:"required,min=1,dive"`
}

func (p *PassengersRequest) Bind(_ *http.Request) error {
	if err := ValidatePassengers(p.Passengers); err != nil {
		return err
	}

	return nil
}

// ValidatePassengers reports the blocking roster validation used by the
// passenger form: every passenger must be complete before payment.
func ValidatePassengers(passengers []PassengerDetails) error {
	if len(passengers) == 0 {
		return exception.BadRequest("at least one passenger is required")
	}

	for _, passenger := range passengers {
		if err := ValidateSingleError(&passenger); err != nil {
			return exception.BadRequest("Please fill in all required fields for all passengers")
		}
	}

	return nil
}

type PaymentRequest struct {
	SessionRequest
	Method string `json:"method" validate:"required,oneof=card upi wallet"`
}

func (p *PaymentRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(p); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}

type CancelBookingRequest struct {
	SessionRequest
	BookingID string `json:"-"`
}

// ResultsResponse is the filtered, sorted view of the current batch.
type ResultsResponse struct {
	SearchParams SearchParams `json:"search_params"`
	TotalResults int          `json:"total_results"`
	SortBy       string       `json:"sort_by"`
	Flights      []Flight     `json:"flights"`
}

type SeatMapResponse struct {
	SeatMap       []SeatMapSeat `json:"seat_map"`
	SelectedSeats []string      `json:"selected_seats"`
	SeatTotal     int           `json:"seat_total"`
}

type PaymentResponse struct {
	Booking Booking       `json:"booking"`
	Fare    FareBreakdown `json:"fare"`
}

type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// CancelBookingResponse is the cancellation receipt shown to the user.
// It reflects the cancelled state for display only; the ledger entry is
// not rewritten.
type CancelBookingResponse struct {
	Booking         Booking `json:"booking"`
	CancellationFee int     `json:"cancellation_fee"`
	RefundAmount    int     `json:"refund_amount"`
	RefundFormatted string  `json:"refund_formatted"`
	Message         string  `json:"message"`
}
