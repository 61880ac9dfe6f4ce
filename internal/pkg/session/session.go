package session

import (
	"sync"
	"time"

	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/wizard"
)

// Session is the single source of truth for one booking flow: search
// parameters, the current generated batch, the chosen flight and seats,
// the passenger roster, the booking ledger and the wizard step. Setters
// replace wholesale; callers merge before calling. The mutex is there
// because the HTTP surface is concurrent even though each session is
// driven by a single user.
type Session struct {
	id        string
	createdAt time.Time

	mu             sync.RWMutex
	searchParams   dto.SearchParams
	flights        []dto.Flight
	selectedFlight *dto.Flight
	passengers     []dto.PassengerDetails
	bookings       []dto.Booking
	currentStep    wizard.Step
	selectedSeats  []string
	filters        dto.Filters
	sortBy         string
}

func newSession(id string) *Session {
	return &Session{
		id:        id,
		createdAt: time.Now(),
		searchParams: dto.SearchParams{
			Passengers:  dto.PassengerCount{Adults: 1},
			TravelClass: dto.TravelClassEconomy,
			TripType:    dto.TripTypeOneWay,
		},
		currentStep: wizard.StepLanding,
		filters:     dto.DefaultFilters(),
		sortBy:      dto.SortByPrice,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) SearchParams() dto.SearchParams {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.searchParams
}

// SetSearchParams replaces the search parameters wholesale. No
// validation happens here; completeness is enforced by the wizard guard
// on the results step.
func (s *Session) SetSearchParams(params dto.SearchParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchParams = params
}

func (s *Session) Flights() []dto.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.Flight, len(s.flights))
	copy(out, s.flights)

	return out
}

func (s *Session) SetFlights(flights []dto.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flights = flights
}

func (s *Session) SelectedFlight() *dto.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedFlight == nil {
		return nil
	}

	flight := *s.selectedFlight

	return &flight
}

// SetSelectedFlight stores the flight chosen for booking. Passing nil
// clears the selection; dependent steps then refuse to render.
func (s *Session) SetSelectedFlight(flight *dto.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedFlight = flight
}

func (s *Session) Passengers() []dto.PassengerDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.PassengerDetails, len(s.passengers))
	copy(out, s.passengers)

	return out
}

func (s *Session) SetPassengers(passengers []dto.PassengerDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.passengers = passengers
}

func (s *Session) Bookings() []dto.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.Booking, len(s.bookings))
	copy(out, s.bookings)

	return out
}

// AddBooking appends to the ledger. Nothing ever mutates or removes
// existing entries through this store.
func (s *Session) AddBooking(booking dto.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, booking)
}

func (s *Session) CurrentStep() wizard.Step {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentStep
}

// Advance moves the wizard to the target step after the centralized
// guard accepts it. On guard failure the step is left untouched.
func (s *Session) Advance(target wizard.Step) error {
	if err := wizard.Transition(s, target); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentStep = target

	return nil
}

func (s *Session) SelectedSeats() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.selectedSeats))
	copy(out, s.selectedSeats)

	return out
}

func (s *Session) SetSelectedSeats(seats []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedSeats = seats
}

func (s *Session) Filters() dto.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filters
}

func (s *Session) SetFilters(filters dto.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = filters
}

func (s *Session) SortBy() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortBy
}

func (s *Session) SetSortBy(sortBy string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortBy = sortBy
}

// SearchReady reports whether origin, destination and departure date are
// all present, the precondition of the results step.
func (s *Session) SearchReady() bool {
	params := s.SearchParams()

	return params.From != nil && params.To != nil && params.DepartureDate != ""
}

func (s *Session) FlightSelected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selectedFlight != nil
}

// PassengersComplete reports whether a non-empty roster with all
// required fields has been stored, the precondition of payment.
func (s *Session) PassengersComplete() bool {
	passengers := s.Passengers()
	if len(passengers) == 0 {
		return false
	}

	for _, p := range passengers {
		if p.FirstName == "" || p.LastName == "" || p.Gender == "" ||
			p.DateOfBirth == "" || p.Email == "" || p.Phone == "" {
			return false
		}
	}

	return true
}

func (s *Session) HasBookings() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookings) > 0
}

// Snapshot renders the client visible view of the session.
func (s *Session) Snapshot() dto.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var selected *dto.Flight
	if s.selectedFlight != nil {
		flight := *s.selectedFlight
		selected = &flight
	}

	seats := make([]string, len(s.selectedSeats))
	copy(seats, s.selectedSeats)

	passengers := make([]dto.PassengerDetails, len(s.passengers))
	copy(passengers, s.passengers)

	return dto.SessionState{
		SessionID:      s.id,
		CurrentStep:    string(s.currentStep),
		SearchParams:   s.searchParams,
		SelectedFlight: selected,
		SelectedSeats:  seats,
		Passengers:     passengers,
		Filters:        s.filters,
		SortBy:         s.sortBy,
		BookingCount:   len(s.bookings),
	}
}
