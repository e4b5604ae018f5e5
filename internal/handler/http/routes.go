package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Verb mismatches are rejected by chi with 405
// before any authorization middleware runs, so a malformed call never
// reaches the access gate.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging, withGzip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
	})

	// cookie-authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/records", h.listRecords)
		r.Post("/api/records", h.addRecords)
		r.Post("/api/records/check", h.checkRecord)
		r.Post("/api/records/delete", h.deleteRecord)

		// admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Post("/api/records/assign", h.assignRecords)
			r.Post("/api/records/clear-checked", h.clearChecked)
			r.Get("/api/users", h.listUsers)
			r.Post("/api/users", h.createUser)
			r.Post("/api/users/delete", h.deleteUser)
			r.Get("/api/stats", h.stats)
		})
	})

	// bearer-token route for administrative blob restore
	router.Group(func(r chi.Router) {
		r.Use(h.authBearer, h.requireAdmin)

		r.Post("/api/blobs/upload", h.uploadBlob)
	})

	return router
}
