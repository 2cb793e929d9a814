package api

import (
	"errors"
	"net/http"

	"github.com/HowesGamingLLC/tablegames/internal/games"
)

// errorResponse is the structured failure body: a success flag and a
// human-readable message. Engine errors are never surfaced as faults.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Success: false, Message: message})
}

// writeEngineError maps an engine error kind to an HTTP status and renders
// the structured body.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	var gameErr *games.Error
	if !errors.As(err, &gameErr) {
		s.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch gameErr.Kind {
	case games.KindNotFound:
		status = http.StatusNotFound
	case games.KindValidation, games.KindUnrecognized:
		status = http.StatusBadRequest
	case games.KindInternal:
		status = http.StatusInternalServerError
	}
	s.writeError(w, status, gameErr.Message)
}
