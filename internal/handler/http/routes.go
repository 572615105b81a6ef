package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/device/register", h.registerDevice)
		r.Post("/api/device/login", h.loginDevice)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a device token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/ledger/push", h.pushSnapshot)
		r.Get("/api/ledger/snapshot", h.getSnapshot)
	})

	return router
}
