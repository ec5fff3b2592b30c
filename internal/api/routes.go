package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/zmanim-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
//	GET    /health
//	GET    /api/v1/zmanim                  zmanim for one day
//	GET    /api/v1/zmanim/range            zmanim for up to 31 days
//	GET    /api/v1/hebrew-date             Hebrew calendar day
//	GET    /api/v1/hebrew-date/convert     Hebrew date to civil date
//	GET    /api/v1/parsha
//	GET    /api/v1/daf
//	GET    /api/v1/molad
//	GET    /api/v1/seasons
//	GET    /api/v1/locations
//	GET    /api/v1/locations/{id}
//	POST   /api/v1/locations               API key
//	DELETE /api/v1/locations/{id}          API key
func SetupRoutes(handlers *Handlers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(),
		RequestIDMiddleware(),
		LoggingMiddleware(),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "No route for "+r.URL.Path)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/zmanim", handlers.GetZmanim)
		r.Get("/zmanim/range", handlers.GetZmanimRange)
		r.Get("/hebrew-date", handlers.GetHebrewDate)
		r.Get("/hebrew-date/convert", handlers.ConvertHebrewDate)
		r.Get("/parsha", handlers.GetParsha)
		r.Get("/daf", handlers.GetDaf)
		r.Get("/molad", handlers.GetMolad)
		r.Get("/seasons", handlers.GetSeasons)

		r.Get("/locations", handlers.ListLocations)
		r.Get("/locations/{id}", handlers.GetLocation)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg))
			r.Post("/locations", handlers.CreateLocation)
			r.Delete("/locations/{id}", handlers.DeleteLocation)
		})
	})

	return r
}
