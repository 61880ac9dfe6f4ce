package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/exception"
)

// Request decoders bridge URL parameters and JSON bodies into the dto
// request types. Session IDs always travel in the URL.

func decodeEmpty(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func decodeSessionRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.SessionRequest{SessionID: chi.URLParam(r, "sessionID")}, nil
}

func decodeNavigateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.NavigateRequest{}
	if err := bindBody(r, req); err != nil {
		return nil, err
	}

	req.SessionID = chi.URLParam(r, "sessionID")

	return req, nil
}

func decodeSearchRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.SearchRequest{}
	if err := bindBody(r, req); err != nil {
		return nil, err
	}

	req.SessionID = chi.URLParam(r, "sessionID")

	return req, nil
}

func decodeResultsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.ResultsRequest{}
	if err := bindBody(r, req); err != nil {
		return nil, err
	}

	req.SessionID = chi.URLParam(r, "sessionID")

	return req, nil
}

func decodeSelectFlightRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.SelectFlightRequest{
		SessionRequest: dto.SessionRequest{SessionID: chi.URLParam(r, "sessionID")},
		FlightID:       chi.URLParam(r, "flightID"),
	}, nil
}

func decodeSeatsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.SeatsRequest{}
	if err := bindBody(r, req); err != nil {
		return nil, err
	}

	req.SessionID = chi.URLParam(r, "sessionID")

	return req, nil
}

func decodePassengersRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.PassengersRequest{}
	if err := bindBody(r, req); err != nil {
		return nil, err
	}

	req.SessionID = chi.URLParam(r, "sessionID")

	return req, nil
}

func decodePaymentRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.PaymentRequest{}
	if err := bindBody(r, req); err != nil {
		return nil, err
	}

	req.SessionID = chi.URLParam(r, "sessionID")

	return req, nil
}

func decodeCancelBookingRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.CancelBookingRequest{
		SessionRequest: dto.SessionRequest{SessionID: chi.URLParam(r, "sessionID")},
		BookingID:      chi.URLParam(r, "bookingID"),
	}, nil
}

func bindBody(r *http.Request, binder render.Binder) error {
	if err := render.Bind(r, binder); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return appErr
		}

		return exception.BadRequest(fmt.Sprintf("malformed request body: %s", err))
	}

	return nil
}
