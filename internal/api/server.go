// Package api exposes a sentiment Classifier over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/spacesedan/sentiment-api/internal/models"
	"github.com/spacesedan/sentiment-api/internal/sentiment"
)

const (
	ServiceName  = "sentiment-api"
	maxBodyBytes = 1 << 20
)

type Server struct {
	classifier sentiment.Classifier
}

// NewServer returns the routed, middleware-wrapped handler.
func NewServer(classifier sentiment.Classifier) http.Handler {
	s := &Server{classifier: classifier}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /sentiment", s.handleSentiment)

	return withRequestID(withAccessLog(mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Service: ServiceName})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.SentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body: expected {\"text\": string}")
		return
	}

	result, err := s.classifier.Classify(r.Context(), req.Text)
	switch {
	case err == nil:
	case errors.Is(err, sentiment.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, sentiment.ErrConfiguration):
		slog.Error("[API] Sentiment request rejected, oracle not configured",
			slog.String("request_id", RequestID(r.Context())))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	default:
		slog.Error("[API] Classification failed",
			slog.String("request_id", RequestID(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "sentiment analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, models.SentimentResponse{
		Label: string(result.Label),
		Score: result.Score,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("[API] Failed to write response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}
