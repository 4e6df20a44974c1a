package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"teamup_server/services"
	"teamup_server/storage"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps the service error taxonomy onto HTTP statuses so
// clients can tell stale state, validation failures, expiry, and concurrency
// conflicts apart.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrMatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrSessionExpired):
		status = http.StatusGone
	case errors.Is(err, services.ErrSessionResolved),
		errors.Is(err, storage.ErrConditionFailed):
		status = http.StatusConflict
	case errors.Is(err, services.ErrEmptyTeam),
		errors.Is(err, services.ErrMissingTeamName),
		errors.Is(err, services.ErrNotTeamMember),
		errors.Is(err, services.ErrInvalidChoice),
		errors.Is(err, services.ErrSelfInterest),
		errors.Is(err, services.ErrEmptyMessage):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
