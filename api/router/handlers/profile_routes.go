package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterProfileRoutes(r chi.Router, h *ProfileHandler) {
	r.Get("/profiles", h.ListProfiles)
	r.Post("/profiles", h.CreateProfile)
	r.Put("/profiles", h.EditProfile)

	// Static /http segments win over {profileID} in chi's tree.
	r.Get("/profiles/http", h.ListHttpProfiles)
	r.Post("/profiles/http", h.CreateHttpProfile)
	r.Put("/profiles/http", h.EditHttpProfile)
	r.Get("/profiles/http/{profileID}", h.GetHttpProfile)
	r.Delete("/profiles/http/{profileID}", h.DeleteHttpProfile)

	r.Get("/profiles/{profileID}", h.GetProfile)
	r.Delete("/profiles/{profileID}", h.DeleteProfile)
}
