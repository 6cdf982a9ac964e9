package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DevCoder-git/anime-verse-suggestor/internal/api/shared"
	"github.com/DevCoder-git/anime-verse-suggestor/internal/domain"
)

// Package-level aliases for the shared helpers so handlers read cleanly.
var (
	DecodeJSON       = shared.DecodeJSON
	ValidateRequest  = shared.ValidateRequest
	RespondWithJSON  = shared.RespondWithJSON
	RespondWithError = shared.RespondWithError
)

// HandleAPIError maps an internal error to an HTTP status code and writes a
// sanitized error response. When userMessage is empty, a safe message is
// derived from the error type. The raw error is logged, never sent.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The user ID is expected to be placed in the context by
// the authentication middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathID extracts a positive int64 identifier from the URL path
// parameters, handling missing and malformed values.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// requireUserAndPathID extracts both the caller identity and an int64 path
// parameter, writing the error response itself when either is missing.
func requireUserAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (uuid.UUID, int64, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authentication required")
		return uuid.Nil, 0, false
	}

	pathID, err := getPathID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, 0, false
	}

	return userID, pathID, true
}
