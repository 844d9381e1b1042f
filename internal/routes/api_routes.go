package routes

import (
	"github.com/go-chi/chi/v5"

	"charterhub/skybroker/internal/api"
	"charterhub/skybroker/internal/middleware"
)

// RegisterAPIRoutes registers all public and operator routes.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	// Public marketplace surface, rate limited per caller IP
	r.Group(func(public chi.Router) {
		public.Use(middleware.RateLimitMiddleware)

		public.Post("/quote", api.QuoteHandler(deps))
		public.Post("/match", api.MatchHandler(deps))
		public.Post("/bookings", api.CreateBookingHandler(deps))
		public.Get("/empty-legs", api.ListEmptyLegsHandler(deps))
		public.Post("/empty-legs/{leg_id}/book", api.BookEmptyLegHandler(deps))
		public.Get("/airports/{iata}", api.GetAirportHandler(deps))
	})

	// Operator routes: all authenticated via JWT or API key
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(&deps.Repo.Keys))

		v1.Post("/pricing/simulate", api.SimulateHandler(deps))

		v1.Get("/jets", api.ListCompanyJetsHandler(deps))
		v1.Post("/jets", api.CreateJetHandler(deps))
		v1.Put("/jets/{jet_id}", api.UpdateJetHandler(deps))
		v1.Delete("/jets/{jet_id}", api.DeleteJetHandler(deps))
		v1.Post("/jets/{jet_id}/position", api.UpdateJetPositionHandler(deps))

		v1.Get("/bookings", api.ListCompanyBookingsHandler(deps))
		v1.Post("/bookings/{booking_id}/accept", api.AcceptBookingHandler(deps))
		v1.Post("/bookings/{booking_id}/reject", api.RejectBookingHandler(deps))

		v1.Post("/empty-legs", api.CreateManualDealHandler(deps))
		v1.Delete("/empty-legs/{leg_id}", api.DeactivateEmptyLegHandler(deps))

		v1.Post("/admin/airports/import", api.ImportAirportsHandler(deps))
	})
}
