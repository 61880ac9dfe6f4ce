package service

import (
	"github.com/skyfare/flight-booking-wizard/internal/pkg/exception"
)

var (
	ErrFlightNotFound = exception.NotFound("flight not found in current results")

	ErrBookingNotFound = exception.NotFound("booking not found")

	ErrNoFlightSelected = exception.Conflict("no flight selected")

	ErrBookingNotCancellable = exception.Conflict("only confirmed bookings can be cancelled")
)
