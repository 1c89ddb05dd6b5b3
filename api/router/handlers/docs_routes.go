package handlers

import (
	"net/http"

	"profilekit/logger"
	"profilekit/models"

	"github.com/go-chi/chi/v5"
	"github.com/swaggo/swag"
)

func RegisterDocsRoutes(r chi.Router) {
	r.Get("/swagger.json", swaggerDocHandler)
}

// swaggerDocHandler serves the OpenAPI document registered by the docs package.
func swaggerDocHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		logger.Error("swaggerDocHandler: Error reading registered API doc: %v", err)
		writeError(w, http.StatusInternalServerError, models.ErrorResponse{Message: "API documentation unavailable"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
