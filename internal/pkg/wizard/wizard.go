package wizard

import (
	"fmt"

	"github.com/skyfare/flight-booking-wizard/internal/pkg/exception"
)

// Step is a wizard page. The flow is linear with explicit branches back
// to search and manage from anywhere.
type Step string

const (
	StepLanding      Step = "landing"
	StepSearch       Step = "search"
	StepResults      Step = "results"
	StepDetails      Step = "details"
	StepPassengers   Step = "passengers"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
	StepManage       Step = "manage"
)

var steps = map[Step]bool{
	StepLanding:      true,
	StepSearch:       true,
	StepResults:      true,
	StepDetails:      true,
	StepPassengers:   true,
	StepPayment:      true,
	StepConfirmation: true,
	StepManage:       true,
}

// ParseStep validates a wire level step name.
func ParseStep(s string) (Step, error) {
	step := Step(s)
	if !steps[step] {
		return "", exception.BadRequest(fmt.Sprintf("unknown wizard step %q", s))
	}

	return step, nil
}

// State exposes the session facts the transition guards need. The
// session store implements it; the guards stay in one place instead of
// being scattered across pages.
type State interface {
	SearchReady() bool
	FlightSelected() bool
	PassengersComplete() bool
	HasBookings() bool
}

// Transition validates the preconditions of a target step. Landing,
// search and manage are reachable from any step via explicit navigation;
// the remaining steps require the state their page renders from.
func Transition(state State, target Step) error {
	switch target {
	case StepLanding, StepSearch, StepManage:
		return nil
	case StepResults:
		if !state.SearchReady() {
			return exception.Conflict("origin, destination and departure date must be set before viewing results")
		}
	case StepDetails, StepPassengers:
		if !state.FlightSelected() {
			return exception.Conflict(fmt.Sprintf("a flight must be selected before the %s step", target))
		}
	case StepPayment:
		if !state.PassengersComplete() {
			return exception.Conflict("passenger details must be complete before payment")
		}
	case StepConfirmation:
		if !state.HasBookings() {
			return exception.Conflict("no completed booking to confirm")
		}
	default:
		return exception.BadRequest(fmt.Sprintf("unknown wizard step %q", target))
	}

	return nil
}
