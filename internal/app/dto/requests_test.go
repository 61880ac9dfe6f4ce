//go:build unit

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := InitValidator(); err != nil {
		panic(err)
	}
}

func validSearchParams() SearchParams {
	return SearchParams{
		From:          &Airport{Code: "DEL", City: "New Delhi"},
		To:            &Airport{Code: "BOM", City: "Mumbai"},
		DepartureDate: "2026-09-15",
		Passengers:    PassengerCount{Adults: 1},
		TravelClass:   TravelClassEconomy,
		TripType:      TripTypeOneWay,
	}
}

func TestSearchParams_Validate(t *testing.T) {
	validateRequest := func(mutate func(*SearchParams), wantErr string) func(t *testing.T) {
		return func(t *testing.T) {
			params := validSearchParams()
			if mutate != nil {
				mutate(&params)
			}

			err := params.Validate()
			if wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), wantErr)
		}
	}

	t.Run("valid", validateRequest(nil, ""))
	t.Run("missing_from", validateRequest(func(p *SearchParams) { p.From = nil }, "from"))
	t.Run("missing_to", validateRequest(func(p *SearchParams) { p.To = nil }, "to"))
	t.Run("missing_departure_date", validateRequest(func(p *SearchParams) { p.DepartureDate = "" }, "departure_date"))
	t.Run("same_airports", validateRequest(func(p *SearchParams) {
		p.To = &Airport{Code: "DEL", City: "New Delhi"}
	}, "different airports"))
	t.Run("bad_travel_class", validateRequest(func(p *SearchParams) { p.TravelClass = "Luxury" }, "travel_class"))
	t.Run("bad_trip_type", validateRequest(func(p *SearchParams) { p.TripType = "multi-city" }, "trip_type"))
	t.Run("zero_adults", validateRequest(func(p *SearchParams) {
		p.Passengers = PassengerCount{Adults: 0}
	}, "adults"))
}

func TestSearchParams_TotalPassengers(t *testing.T) {
	params := validSearchParams()
	params.Passengers = PassengerCount{Adults: 2, Children: 1, Infants: 1}

	assert.Equal(t, 4, params.TotalPassengers())
}

func TestResultsRequest_Bind(t *testing.T) {
	bindRequest := func(req ResultsRequest, wantErr string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), wantErr)
		}
	}

	inverted := DefaultFilters()
	inverted.PriceRange = [2]int{5000, 1000}

	t.Run("empty", bindRequest(ResultsRequest{}, ""))
	t.Run("valid_sort", bindRequest(ResultsRequest{SortBy: SortByDuration}, ""))
	t.Run("invalid_sort", bindRequest(ResultsRequest{SortBy: "rating"}, "Invalid sort field"))
	t.Run("inverted_price_range", bindRequest(ResultsRequest{Filters: &inverted}, "price range"))
}

func TestValidatePassengers(t *testing.T) {
	complete := PassengerDetails{
		FirstName:   "Asha",
		LastName:    "Verma",
		Gender:      "Female",
		DateOfBirth: "1990-04-12",
		Email:       "asha.verma@example.com",
		Phone:       "+919876543210",
	}

	validateRoster := func(passengers []PassengerDetails, wantErr string) func(t *testing.T) {
		return func(t *testing.T) {
			err := ValidatePassengers(passengers)
			if wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), wantErr)
		}
	}

	missingEmail := complete
	missingEmail.Email = ""
	badGender := complete
	badGender.Gender = "X"

	t.Run("complete_roster", validateRoster([]PassengerDetails{complete}, ""))
	t.Run("empty_roster", validateRoster(nil, "at least one passenger"))
	t.Run("one_incomplete_blocks_all", validateRoster(
		[]PassengerDetails{complete, missingEmail},
		"Please fill in all required fields for all passengers"))
	t.Run("bad_gender", validateRoster([]PassengerDetails{badGender},
		"Please fill in all required fields for all passengers"))
}

func TestPaymentRequest_Bind(t *testing.T) {
	bindRequest := func(method string, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			req := PaymentRequest{Method: method}
			err := req.Bind(nil)
			if wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		}
	}

	t.Run("card", bindRequest("card", false))
	t.Run("upi", bindRequest("upi", false))
	t.Run("wallet", bindRequest("wallet", false))
	t.Run("missing", bindRequest("", true))
	t.Run("unknown", bindRequest("cheque", true))
}
