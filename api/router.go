package api

import (
	"net/http"

	"profilekit/api/router/handlers"
	"profilekit/core"
	_ "profilekit/docs"
	"profilekit/logger"
	"profilekit/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultCompressLevel is used when Options.CompressLevel is zero.
const DefaultCompressLevel = 5

// Options tunes the API router. The zero value is usable.
type Options struct {
	Metrics       *metrics.Metrics
	CompressLevel int
}

// NewRouter creates and configures the chi router for the API.
// All registered paths are relative to the /api base path.
func NewRouter(service *core.ProfileService, opts Options) http.Handler {
	level := opts.CompressLevel
	if level == 0 {
		level = DefaultCompressLevel
	}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(instrument(opts.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(compressor(level))

	handlers.RegisterSystemRoutes(router)
	handlers.RegisterDocsRoutes(router)
	handlers.RegisterProfileRoutes(router, handlers.NewProfileHandler(service))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logger.Error("API SUB-ROUTER CATCH-ALL: Unhandled route relative to /api: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return router
}
