package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/HowesGamingLLC/tablegames/internal/games"
)

// playResponse wraps a successful game outcome with the success flag the
// action contract requires.
type playResponse struct {
	Success bool `json:"success"`
	*games.PlayResult
}

// joinResponse reports a successful table join.
type joinResponse struct {
	Success bool        `json:"success"`
	Table   games.Table `json:"table"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"tables": s.engine.Tables(),
	})
}

func (s *Server) handleGetTable(w http.ResponseWriter, r *http.Request) {
	table, err := s.engine.Table(chi.URLParam(r, "tableID"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleJoinTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	table, err := s.engine.Join(r.Context(), chi.URLParam(r, "tableID"), req.PlayerID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, joinResponse{Success: true, Table: table})
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req games.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	s.log.Info("play request",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("game_type", req.GameType),
		zap.String("table_id", req.TableID),
		zap.String("player_id", req.PlayerID),
		zap.String("action", req.Action),
	)

	result, err := s.engine.Play(r.Context(), req)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, playResponse{Success: true, PlayResult: result})
}
