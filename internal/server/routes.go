package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, db *sql.DB) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Ambari API", "/openapi.json", "/docs"))

	r.Get("/api/health", handleHealth(logger, db))
	r.Get("/api/places", handlePlaces(store))
	r.Post("/api/validate/qr", handleValidateQR(logger, store))
	r.Post("/api/validate/tag", handleValidateTag(logger, store))

	// Admin surface: session cookie auth, read-only over the check-in log.
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", handleAdminLogin(store))
		r.Post("/logout", handleAdminLogout(store))
		r.Get("/me", handleAdminMe(store))

		r.Group(func(r chi.Router) {
			r.Use(adminAuthMiddleware(store))
			r.Get("/checkins", handleAdminCheckins(store))
			r.Get("/stats", handleAdminStats(store))
		})
	})
}
