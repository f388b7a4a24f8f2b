package income

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finpilot/internal/http/identity"
	"github.com/MrJamesThe3rd/finpilot/internal/income"
)

type Handler struct {
	svc *income.Service
}

func NewHandler(svc *income.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.set)
}

type incomeResponse struct {
	Amount float64 `json:"amount"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	amount, err := h.svc.Amount(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(incomeResponse{Amount: amount}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setIncomeRequest struct {
	Amount float64 `json:"amount"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	var req setIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Set(r.Context(), userID, req.Amount); err != nil {
		if errors.Is(err, income.ErrNegativeAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(incomeResponse{Amount: req.Amount}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
