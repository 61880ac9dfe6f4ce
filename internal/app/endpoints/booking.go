package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
)

// BookingService is the wizard operation surface consumed by the
// transport layer.
type BookingService interface {
	StartSession(ctx context.Context) (dto.SessionState, error)
	Session(ctx context.Context, sessionID string) (dto.SessionState, error)
	Navigate(ctx context.Context, sessionID, step string) (dto.SessionState, error)
	SearchFlights(ctx context.Context, sessionID string, params dto.SearchParams) (dto.ResultsResponse, error)
	Results(ctx context.Context, req dto.ResultsRequest) (dto.ResultsResponse, error)
	SelectFlight(ctx context.Context, sessionID, flightID string) (dto.SessionState, error)
	SeatMap(ctx context.Context, sessionID string) (dto.SeatMapResponse, error)
	SelectSeats(ctx context.Context, sessionID string, seats []string) (dto.SeatMapResponse, error)
	SubmitPassengers(ctx context.Context, sessionID string, passengers []dto.PassengerDetails) (dto.SessionState, error)
	Fare(ctx context.Context, sessionID string) (dto.FareBreakdown, error)
	Pay(ctx context.Context, sessionID, method string) (dto.PaymentResponse, error)
	Bookings(ctx context.Context, sessionID string) (dto.BookingsResponse, error)
	CancelBooking(ctx context.Context, sessionID, bookingID string) (dto.CancelBookingResponse, error)
}

type Endpoints struct {
	StartSession     endpoint.Endpoint
	GetSession       endpoint.Endpoint
	Navigate         endpoint.Endpoint
	SearchFlights    endpoint.Endpoint
	Results          endpoint.Endpoint
	SelectFlight     endpoint.Endpoint
	SeatMap          endpoint.Endpoint
	SelectSeats      endpoint.Endpoint
	SubmitPassengers endpoint.Endpoint
	Fare             endpoint.Endpoint
	Pay              endpoint.Endpoint
	Bookings         endpoint.Endpoint
	CancelBooking    endpoint.Endpoint
}

func MakeEndpoints(service BookingService) Endpoints {
	return Endpoints{
		StartSession:     makeStartSessionEndpoint(service),
		GetSession:       makeGetSessionEndpoint(service),
		Navigate:         makeNavigateEndpoint(service),
		SearchFlights:    makeSearchFlightsEndpoint(service),
		Results:          makeResultsEndpoint(service),
		SelectFlight:     makeSelectFlightEndpoint(service),
		SeatMap:          makeSeatMapEndpoint(service),
		SelectSeats:      makeSelectSeatsEndpoint(service),
		SubmitPassengers: makeSubmitPassengersEndpoint(service),
		Fare:             makeFareEndpoint(service),
		Pay:              makePayEndpoint(service),
		Bookings:         makeBookingsEndpoint(service),
		CancelBooking:    makeCancelBookingEndpoint(service),
	}
}

func makeStartSessionEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		state, err := service.StartSession(ctx)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return state, nil
	}
}

func makeGetSessionEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SessionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		state, err := service.Session(ctx, request.SessionID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return state, nil
	}
}

func makeNavigateEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.NavigateRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		state, err := service.Navigate(ctx, request.SessionID, request.Step)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return state, nil
	}
}

func makeSearchFlightsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		view, err := service.SearchFlights(ctx, request.SessionID, request.SearchParams)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return view, nil
	}
}

func makeResultsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ResultsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		view, err := service.Results(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return view, nil
	}
}

func makeSelectFlightEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SelectFlightRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		state, err := service.SelectFlight(ctx, request.SessionID, request.FlightID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return state, nil
	}
}

func makeSeatMapEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SessionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		seats, err := service.SeatMap(ctx, request.SessionID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return seats, nil
	}
}

func makeSelectSeatsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SeatsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		seats, err := service.SelectSeats(ctx, request.SessionID, request.Seats)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return seats, nil
	}
}

func makeSubmitPassengersEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PassengersRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		state, err := service.SubmitPassengers(ctx, request.SessionID, request.Passengers)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return state, nil
	}
}

func makeFareEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SessionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		fare, err := service.Fare(ctx, request.SessionID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return fare, nil
	}
}

func makePayEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PaymentRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		receipt, err := service.Pay(ctx, request.SessionID, request.Method)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return receipt, nil
	}
}

func makeBookingsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SessionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		bookings, err := service.Bookings(ctx, request.SessionID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return bookings, nil
	}
}

func makeCancelBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CancelBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		receipt, err := service.CancelBooking(ctx, request.SessionID, request.BookingID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return receipt, nil
	}
}
