package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RESTPath is the path of the Flickr-compatible REST endpoint.
const RESTPath = "/services/rest"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/javascript"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get(RESTPath, h.serveREST)
	router.Get(RESTPath+"/", h.serveREST)
	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
