package handlers

import (
	"fmt"
	"net/http"

	"profilekit/core"
	"profilekit/logger"
	"profilekit/models"
)

// ProfileHandler serves the base and Http profile endpoints.
type ProfileHandler struct {
	service *core.ProfileService
}

// NewProfileHandler creates a handler backed by service.
func NewProfileHandler(service *core.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// ListProfiles handles GET /profiles.
// @Summary List profiles
// @Description Lists every profile of every kind. Http profiles include their Http fields.
// @Tags Profiles
// @Produce json
// @Success 200 {array} models.Profile
// @Failure 500 {object} models.ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List()
	if err != nil {
		writeServiceError(w, "ListProfiles", err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
	logger.Info("Fetched %d profiles", len(profiles))
}

// GetProfile handles GET /profiles/{profileID}.
// @Summary Get a profile
// @Tags Profiles
// @Produce json
// @Param profileID path int true "Profile ID"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{profileID} [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r, "GetProfile")
	if !ok {
		return
	}
	p, err := h.service.Get(id)
	if err != nil {
		writeServiceError(w, "GetProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateProfile handles POST /profiles.
// @Summary Create a base profile
// @Description Http profiles are created through POST /profiles/http. A supplied id is used when free; a taken id is rejected with 409.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile to create"
// @Success 201 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if !decodeBody(w, r, &p, "CreateProfile") {
		return
	}
	created, err := h.service.Create(p)
	if err != nil {
		writeServiceError(w, "CreateProfile", err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/profiles/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// EditProfile handles PUT /profiles.
// @Summary Edit a profile
// @Description Replaces name, description and enabled of the profile named by the body's id. Kind and Http fields are never changed.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile with id"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles [put]
func (h *ProfileHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if !decodeBody(w, r, &p, "EditProfile") {
		return
	}
	updated, err := h.service.Update(p)
	if err != nil {
		writeServiceError(w, "EditProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProfile handles DELETE /profiles/{profileID}.
// @Summary Delete a profile
// @Tags Profiles
// @Param profileID path int true "Profile ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{profileID} [delete]
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r, "DeleteProfile")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		writeServiceError(w, "DeleteProfile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListHttpProfiles handles GET /profiles/http.
// @Summary List Http profiles
// @Description Profiles of other kinds are not part of this collection.
// @Tags HttpProfiles
// @Produce json
// @Success 200 {array} models.HttpProfile
// @Failure 500 {object} models.ErrorResponse
// @Router /profiles/http [get]
func (h *ProfileHandler) ListHttpProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListHttp()
	if err != nil {
		writeServiceError(w, "ListHttpProfiles", err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
	logger.Info("Fetched %d http profiles", len(profiles))
}

// GetHttpProfile handles GET /profiles/http/{profileID}.
// @Summary Get an Http profile
// @Tags HttpProfiles
// @Produce json
// @Param profileID path int true "Profile ID"
// @Success 200 {object} models.HttpProfile
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Profile exists but is not an Http profile"
// @Router /profiles/http/{profileID} [get]
func (h *ProfileHandler) GetHttpProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r, "GetHttpProfile")
	if !ok {
		return
	}
	p, err := h.service.GetHttp(id)
	if err != nil {
		writeServiceError(w, "GetHttpProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateHttpProfile handles POST /profiles/http.
// @Summary Create an Http profile
// @Tags HttpProfiles
// @Accept json
// @Produce json
// @Param profile body models.HttpProfile true "Http profile to create"
// @Success 201 {object} models.HttpProfile
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /profiles/http [post]
func (h *ProfileHandler) CreateHttpProfile(w http.ResponseWriter, r *http.Request) {
	var p models.HttpProfile
	if !decodeBody(w, r, &p, "CreateHttpProfile") {
		return
	}
	created, err := h.service.CreateHttp(p)
	if err != nil {
		writeServiceError(w, "CreateHttpProfile", err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/profiles/http/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// EditHttpProfile handles PUT /profiles/http.
// @Summary Edit the Http fields of a profile
// @Description Overwrites request_headers, urls, cookies and the three templates. Name, description, enabled and kind are kept.
// @Tags HttpProfiles
// @Accept json
// @Produce json
// @Param profile body models.HttpProfile true "Http profile with id"
// @Success 200 {object} models.HttpProfile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Profile exists but is not an Http profile"
// @Router /profiles/http [put]
func (h *ProfileHandler) EditHttpProfile(w http.ResponseWriter, r *http.Request) {
	var p models.HttpProfile
	if !decodeBody(w, r, &p, "EditHttpProfile") {
		return
	}
	edited, err := h.service.EditHttp(p)
	if err != nil {
		writeServiceError(w, "EditHttpProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, edited)
}

// DeleteHttpProfile handles DELETE /profiles/http/{profileID}. It removes the
// record whatever its kind, like DeleteProfile.
// @Summary Delete a profile through the Http view
// @Tags HttpProfiles
// @Param profileID path int true "Profile ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/http/{profileID} [delete]
func (h *ProfileHandler) DeleteHttpProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r, "DeleteHttpProfile")
	if !ok {
		return
	}
	if err := h.service.DeleteHttp(id); err != nil {
		writeServiceError(w, "DeleteHttpProfile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
