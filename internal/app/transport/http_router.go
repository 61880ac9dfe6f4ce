package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-redis/redis_rate/v10"
	"github.com/skyfare/flight-booking-wizard/internal/app/config"
	"github.com/skyfare/flight-booking-wizard/internal/app/endpoints"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/catalog"
	httptransport "github.com/skyfare/flight-booking-wizard/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the booking wizard
// endpoints. A nil limiter disables the search throttle.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter *redis_rate.Limiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		// static reference data for the search form
		router.Get("/airports", func(w http.ResponseWriter, r *http.Request) {
			_ = httptransport.ResponseWithBody(r.Context(), w, catalog.Airports)
		})

		router.Post("/sessions", httptransport.MakeHandlerFunc(
			endpts.StartSession,
			decodeEmpty,
			httptransport.CreatedResponse,
		))

		router.Route("/sessions/{sessionID}", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.GetSession,
				decodeSessionRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/navigate", httptransport.MakeHandlerFunc(
				endpts.Navigate,
				decodeNavigateRequest,
				httptransport.ResponseWithBody,
			))

			router.With(httptransport.RateLimit(limiter, cfg.Search.RateLimitRPS)).
				Post("/search", httptransport.MakeHandlerFunc(
					endpts.SearchFlights,
					decodeSearchRequest,
					httptransport.ResponseWithBody,
				))

			router.Post("/results", httptransport.MakeHandlerFunc(
				endpts.Results,
				decodeResultsRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/flights/{flightID}/select", httptransport.MakeHandlerFunc(
				endpts.SelectFlight,
				decodeSelectFlightRequest,
				httptransport.ResponseWithBody,
			))

			router.Get("/seatmap", httptransport.MakeHandlerFunc(
				endpts.SeatMap,
				decodeSessionRequest,
				httptransport.ResponseWithBody,
			))

			router.Put("/seats", httptransport.MakeHandlerFunc(
				endpts.SelectSeats,
				decodeSeatsRequest,
				httptransport.ResponseWithBody,
			))

			router.Put("/passengers", httptransport.MakeHandlerFunc(
				endpts.SubmitPassengers,
				decodePassengersRequest,
				httptransport.ResponseWithBody,
			))

			router.Get("/fare", httptransport.MakeHandlerFunc(
				endpts.Fare,
				decodeSessionRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/payment", httptransport.MakeHandlerFunc(
				endpts.Pay,
				decodePaymentRequest,
				httptransport.ResponseWithBody,
			))

			router.Get("/bookings", httptransport.MakeHandlerFunc(
				endpts.Bookings,
				decodeSessionRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/bookings/{bookingID}/cancel", httptransport.MakeHandlerFunc(
				endpts.CancelBooking,
				decodeCancelBookingRequest,
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
