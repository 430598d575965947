package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"nat.service/internal/core"
	"nat.service/internal/core/session"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

type errorBody struct {
	Error            string `json:"error"`
	RemainingMinutes int    `json:"remainingMinutes,omitempty"`
}

// respondError maps the core error taxonomy onto HTTP statuses. Every
// failure here is recoverable by user retry; nothing is fatal.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var tooEarly *session.TooEarlyError
	switch {
	case errors.As(err, &tooEarly):
		respondJSON(w, http.StatusConflict, errorBody{
			Error:            tooEarly.Error(),
			RemainingMinutes: tooEarly.RemainingMinutes,
		})
	case errors.Is(err, session.ErrValidation), errors.Is(err, core.ErrValidation):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, session.ErrInvalidTransition), errors.Is(err, core.ErrAlreadyProcessed):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, core.ErrNotFound), errors.Is(err, session.ErrEmployeeNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, core.ErrUnauthorized):
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	default:
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
