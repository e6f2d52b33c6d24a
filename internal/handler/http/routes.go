package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// vault routes, scoped to the authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/vault", h.saveRecord)
		r.Get("/api/vault", h.listRecords)
		r.Put("/api/vault/{id}", h.updateRecord)
		r.Delete("/api/vault/{id}", h.deleteRecord)
	})

	return router
}
