package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"profilekit/core"
	"profilekit/logger"
	"profilekit/models"

	"github.com/go-chi/chi/v5"
)

// writeJSON encodes payload with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("writeJSON: Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, resp models.ErrorResponse) {
	writeJSON(w, status, resp)
}

// writeServiceError maps a ProfileService error onto a status code and
// ErrorResponse body. Infrastructure failures never leak their text.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	code := core.ErrorCode(err)
	resp := models.ErrorResponse{Message: err.Error(), Error: code}
	status := http.StatusInternalServerError

	switch code {
	case core.CodeNotFound:
		status = http.StatusNotFound
	case core.CodeNarrowingFailure, core.CodeIDConflict:
		status = http.StatusConflict
	case core.CodeValidationFailure:
		status = http.StatusBadRequest
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			resp.Details = ve.Violations
		}
	default:
		logger.Error("%s: %v", op, err)
		resp.Message = "Internal server error"
	}
	writeError(w, status, resp)
}

// profileIDParam parses the {profileID} route parameter, answering 400 itself
// when it is not a positive integer.
func profileIDParam(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	idStr := chi.URLParam(r, "profileID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		logger.Error("%s: Invalid profile ID format '%s'", op, idStr)
		writeError(w, http.StatusBadRequest, models.ErrorResponse{
			Message: fmt.Sprintf("Invalid profile ID '%s'", idStr),
			Error:   core.CodeValidationFailure,
		})
		return 0, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into dst, answering 400 itself on
// malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error("%s: Error decoding request body: %v", op, err)
		writeError(w, http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body: " + err.Error(),
			Error:   core.CodeValidationFailure,
		})
		return false
	}
	return true
}
