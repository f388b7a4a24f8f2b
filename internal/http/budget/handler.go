package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/http/identity"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{month}", h.get)
	r.Put("/{month}", h.save)
	r.Get("/{month}/defaults", h.defaults)
}

type allocationResponse struct {
	Month      month.Month        `json:"month"`
	Percents   map[string]float64 `json:"percents"`
	Savings    float64            `json:"savings_percent"`
	Categories []string           `json:"categories"`
}

func toResponse(m month.Month, alloc budget.Allocation) allocationResponse {
	return allocationResponse{
		Month:      m,
		Percents:   alloc.Percents(),
		Savings:    alloc.SavingsPercent(),
		Categories: alloc.Categories(),
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	m, err := month.Parse(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	alloc, err := h.svc.Get(r.Context(), userID, m)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m, alloc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveBudgetRequest struct {
	Percents map[string]float64 `json:"percents"`
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	m, err := month.Parse(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	var req saveBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	alloc, err := h.svc.Save(r.Context(), userID, m, req.Percents)
	if err != nil {
		switch {
		case errors.Is(err, budget.ErrOverAllocated),
			errors.Is(err, budget.ErrInvalidPercent),
			errors.Is(err, budget.ErrReservedCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m, alloc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type defaultsResponse struct {
	Percents  map[string]float64 `json:"percents"`
	FromPrior bool               `json:"from_prior"`
}

func (h *Handler) defaults(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	m, err := month.Parse(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	percents, fromPrior, err := h.svc.Defaults(r.Context(), userID, m)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(defaultsResponse{Percents: percents, FromPrior: fromPrior}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
