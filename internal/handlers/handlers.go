package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agreensr/sports-prop-odds-api-sub002/internal/recommender"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	engine *recommender.Engine
}

// NewHandler creates a new handler
func NewHandler(engine *recommender.Engine) *Handler {
	return &Handler{
		engine: engine,
	}
}

// GenerateRequest is the body for POST /api/v1/recommendations/generate
type GenerateRequest struct {
	Date     string `json:"date"`      // YYYY-MM-DD, defaults to today
	SportKey string `json:"sport_key"` // Empty means all sports
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "recommender",
	})
}

// GenerateSlate runs the recommendation pipeline for a date and sport and
// returns the slate
func (h *Handler) GenerateSlate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	slate, err := h.engine.GenerateSlate(r.Context(), date, req.SportKey)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("generate failed: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, slate)
}

// GetReport runs the pipeline and returns the plain-text rendering.
// Nothing is persisted; the engine is idempotent, so re-running for the same
// inputs is safe.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sportKey := r.URL.Query().Get("sport")

	slate, err := h.engine.PreviewSlate(r.Context(), date, sportKey)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("generate failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, recommender.FormatSlateText(slate))
}

// parseDate parses a YYYY-MM-DD date, defaulting to today when empty
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}

	return date, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
