package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterSystemRoutes(r chi.Router) {
	r.Get("/health", healthCheckHandler)
	r.Get("/version", GetVersionHandler)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
