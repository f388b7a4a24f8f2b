package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finpilot/internal/http/identity"
	"github.com/MrJamesThe3rd/finpilot/internal/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
	r.Get("/progress", h.progress)
}

type profileResponse struct {
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Country            string  `json:"country"`
	SavingsGoalPerYear float64 `json:"savings_goal_per_year"`
	TotalSavings       float64 `json:"total_savings"`
}

func toResponse(p *profile.Profile) profileResponse {
	return profileResponse{
		Name:               p.Name,
		Age:                p.Age,
		Country:            p.Country,
		SavingsGoalPerYear: p.SavingsGoalPerYear,
		TotalSavings:       p.TotalSavings,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	p, err := h.svc.Ensure(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProfileRequest struct {
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Country            string  `json:"country"`
	SavingsGoalPerYear float64 `json:"savings_goal_per_year"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Update(r.Context(), userID, profile.UpdateParams{
		Name:               req.Name,
		Age:                req.Age,
		Country:            req.Country,
		SavingsGoalPerYear: req.SavingsGoalPerYear,
	})
	if err != nil {
		if errors.Is(err, profile.ErrInvalidAge) || errors.Is(err, profile.ErrNegativeGoal) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type progressResponse struct {
	Year       int     `json:"year"`
	Saved      float64 `json:"saved"`
	Goal       float64 `json:"goal"`
	Completion float64 `json:"completion"`
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	year := time.Now().Year()
	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		year = y
	}

	saved, goal, completion, err := h.svc.YearProgress(r.Context(), userID, year)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := progressResponse{Year: year, Saved: saved, Goal: goal, Completion: completion}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
