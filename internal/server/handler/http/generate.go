// Package http provides HTTP handlers for password generation, strength
// assessment and generation history.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/atinyakov/passgen/internal/models"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/service"
	"github.com/atinyakov/passgen/internal/strength"
)

const (
	// MaxLength is the largest password the API will generate or rate, in runes.
	MaxLength = 4096

	// maxBodyBytes caps request bodies.
	maxBodyBytes = 64 << 10
)

// GeneratorService defines the operations required by the GenerateHandler.
type GeneratorService interface {
	// Generate builds and rates a password for the given options.
	Generate(ctx context.Context, opts password.Options) (models.Generated, error)
	// History returns up to limit recent generations; service.ErrHistoryDisabled
	// when history is not configured.
	History(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// GenerateHandler handles the generation API.
type GenerateHandler struct {
	// Service performs generation and history lookups.
	Service GeneratorService
}

// Generate handles POST /api/generate.
// Validation failures (no class selected, length too short or too long)
// are reported with 400 Bad Request.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Length > MaxLength {
		http.Error(w, "length must be at most "+strconv.Itoa(MaxLength), http.StatusBadRequest)
		return
	}

	opts := password.Options{
		Length:  req.Length,
		Upper:   req.Upper,
		Lower:   req.Lower,
		Digits:  req.Digits,
		Symbols: req.Symbols,
	}
	res, err := h.Service.Generate(r.Context(), opts)
	switch {
	case errors.Is(err, password.ErrNoClassSelected), errors.Is(err, password.ErrLengthTooShort):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, res)
}

// Strength handles POST /api/strength.
// Passwords longer than MaxLength runes are rejected with 400 Bad Request.
func (h *GenerateHandler) Strength(w http.ResponseWriter, r *http.Request) {
	var req models.StrengthRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(req.Password) > MaxLength {
		http.Error(w, "password must be at most "+strconv.Itoa(MaxLength)+" characters", http.StatusBadRequest)
		return
	}

	res := strength.Assess(req.Password)
	est := strength.EstimateOf(req.Password)
	writeJSON(w, models.StrengthResponse{
		Score:     res.Score,
		Strength:  res.Label,
		Entropy:   est.Entropy,
		CrackTime: est.CrackTime,
	})
}

// History handles GET /api/history?limit=N.
func (h *GenerateHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := h.Service.History(r.Context(), limit)
	switch {
	case errors.Is(err, service.ErrHistoryDisabled):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	writeJSON(w, entries)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
