package dto

// Travel classes offered by the search form.
const (
	TravelClassEconomy        = "Economy"
	TravelClassPremiumEconomy = "Premium Economy"
	TravelClassBusiness       = "Business"
	TravelClassFirst          = "First Class"
)

const (
	TripTypeOneWay    = "one-way"
	TripTypeRoundTrip = "round-trip"
)

// Badges derived per generated batch, at most one flight per criterion.
const (
	BadgeCheapest = "cheapest"
	BadgeFastest  = "fastest"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusPending   = "pending"
)

const (
	SeatStatusAvailable = "available"
	SeatStatusOccupied  = "occupied"
	SeatStatusPremium   = "premium"
	SeatStatusSelected  = "selected"
)

const (
	SortByPrice     = "price"
	SortByDuration  = "duration"
	SortByDeparture = "departure"
)

var AllowedSortBy = map[string]bool{
	SortByPrice:     true,
	SortByDuration:  true,
	SortByDeparture: true,
}

// DefaultMaxPrice is the upper bound of the default price range filter.
const DefaultMaxPrice = 50000

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type PassengerCount struct {
	Adults   int `json:"adults" validate:"required,min=1"`
	Children int `json:"children" validate:"min=0"`
	Infants  int `json:"infants" validate:"min=0"`
}

type Flight struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	AirlineLogo   string   `json:"airline_logo"`
	FlightNumber  string   `json:"flight_number"`
	From          Airport  `json:"from"`
	To            Airport  `json:"to"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Stops         int      `json:"stops"`
	StopDetails   []string `json:"stop_details,omitempty"`
	Price         int      `json:"price"`
	Seats         int      `json:"seats"`
	Badge         string   `json:"badge,omitempty"`
}

type PassengerDetails struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth    string `json:"date_of_birth" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	PassportNumber string `json:"passport_number,omitempty"`
}

type SeatMapSeat struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Status string `json:"status"`
	Price  int    `json:"price,omitempty"`
}

type Booking struct {
	ID          string             `json:"id"`
	PNR         string             `json:"pnr"`
	Flight      Flight             `json:"flight"`
	Passengers  []PassengerDetails `json:"passengers"`
	TotalPrice  int                `json:"total_price"`
	BookingDate string             `json:"booking_date"`
	Status      string             `json:"status"`
}

// Filters narrows the generated batch on the results view. Empty stop
// and airline sets mean no restriction; the price range is inclusive.
type Filters struct {
	Stops      []int    `json:"stops"`
	PriceRange [2]int   `json:"price_range"`
	Airlines   []string `json:"airlines"`
}

func DefaultFilters() Filters {
	return Filters{PriceRange: [2]int{0, DefaultMaxPrice}}
}

// FareBreakdown is the payment page price summary.
type FareBreakdown struct {
	BaseFare       int    `json:"base_fare"`
	SeatTotal      int    `json:"seat_total"`
	Taxes          int    `json:"taxes"`
	ConvenienceFee int    `json:"convenience_fee"`
	Total          int    `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

// SessionState is the client visible snapshot of a booking session.
type SessionState struct {
	SessionID      string             `json:"session_id"`
	CurrentStep    string             `json:"current_step"`
	SearchParams   SearchParams       `json:"search_params"`
	SelectedFlight *Flight            `json:"selected_flight,omitempty"`
	SelectedSeats  []string           `json:"selected_seats"`
	Passengers     []PassengerDetails `json:"passengers"`
	Filters        Filters            `json:"filters"`
	SortBy         string             `json:"sort_by"`
	BookingCount   int                `json:"booking_count"`
}
