package catalog

import "github.com/skyfare/flight-booking-wizard/internal/app/dto"

// Airports is the static reference list offered by the search form.
var Airports = []dto.Airport{
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "New Delhi", Country: "India"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India"},
	{Code: "MAA", Name: "Chennai International Airport", City: "Chennai", Country: "India"},
	{Code: "HYD", Name: "Rajiv Gandhi International Airport", City: "Hyderabad", Country: "India"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata", Country: "India"},
	{Code: "GOI", Name: "Goa International Airport", City: "Goa", Country: "India"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "UK"},
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
}

// AirportByCode resolves an airport from its unique IATA code.
func AirportByCode(code string) (dto.Airport, bool) {
	for _, airport := range Airports {
		if airport.Code == code {
			return airport, true
		}
	}

	return dto.Airport{}, false
}

type airline struct {
	Name string
	Logo string
}

var airlines = []airline{
	{Name: "Air India", Logo: "🇮🇳"},
	{Name: "IndiGo", Logo: "✈️"},
	{Name: "Vistara", Logo: "🦚"},
	{Name: "SpiceJet", Logo: "🌶️"},
	{Name: "Emirates", Logo: "🦅"},
	{Name: "Singapore Airlines", Logo: "🦁"},
	{Name: "British Airways", Logo: "🇬🇧"},
	{Name: "Lufthansa", Logo: "🇩🇪"},
}

// AirlineNames lists the roster the generator draws from, for filter UIs.
func AirlineNames() []string {
	names := make([]string, len(airlines))
	for i, a := range airlines {
		names[i] = a.Name
	}

	return names
}
