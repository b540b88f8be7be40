package web

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"quantum-tutor/internal/domain/model"
	"quantum-tutor/internal/infra/logging"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatMetadata struct {
	ResponseTime       float64 `json:"response_time"`
	Category           string  `json:"category"`
	ConversationLength int     `json:"conversation_length"`
	Degraded           bool    `json:"degraded"`
}

type chatResponse struct {
	Success  bool                 `json:"success"`
	Response string               `json:"response,omitempty"`
	Metadata *chatMetadata        `json:"metadata,omitempty"`
	Stats    *model.StatsSnapshot `json:"stats,omitempty"`
	Error    string               `json:"error,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{Success: false, Error: "Invalid request body"})
		return
	}
	// Blank input is rejected here; the core never receives empty messages.
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, chatResponse{Success: false, Error: "Empty message"})
		return
	}

	s.mu.Lock()
	reply, err := s.tutor.Handle(ctx, req.Message)
	var stats model.StatsSnapshot
	if err == nil {
		stats = s.tutor.Stats(ctx)
	}
	s.mu.Unlock()

	if err != nil {
		logging.With(ctx, s.log).Error().Err(err).Msg("handle message")
		writeJSON(w, http.StatusBadRequest, chatResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success:  true,
		Response: reply.Response,
		Metadata: &chatMetadata{
			ResponseTime:       round2(reply.ResponseTime.Seconds()),
			Category:           reply.Category.String(),
			ConversationLength: reply.ConversationLength,
			Degraded:           reply.Degraded,
		},
		Stats: &stats,
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	s.mu.Lock()
	s.tutor.Reset(ctx)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{Success: true})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	s.mu.Lock()
	summary := s.tutor.Summary(ctx)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Summary string `json:"summary"`
	}{Success: true, Summary: summary})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	s.mu.Lock()
	stats := s.tutor.Stats(ctx)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
