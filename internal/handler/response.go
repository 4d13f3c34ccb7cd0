package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/gommon/log"

	"cash-audit/internal/domain"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("[HTTP] failed to encode response: %v", err)
	}
}

func writeSuccess(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, APIResponse{Status: "success", Data: data})
}

// writeError maps domain errors to status codes: validation 400, unknown session 404,
// everything else 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, APIResponse{Status: "error", Message: verr.Error()})
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, APIResponse{Status: "error", Message: err.Error()})
	default:
		log.Errorf("[HTTP] %v", err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{Status: "error", Message: "internal error"})
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid request body: %v", err)
	}
	return nil
}
