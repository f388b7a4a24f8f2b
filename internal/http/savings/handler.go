package savings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finpilot/internal/http/identity"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
	"github.com/MrJamesThe3rd/finpilot/internal/savings"
)

type Handler struct {
	svc *savings.Service
}

func NewHandler(svc *savings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.history)
}

type entryResponse struct {
	Month      month.Month `json:"month"`
	Amount     float64     `json:"amount"`
	RecordedOn string      `json:"recorded_on"`
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	entries, err := h.svc.History(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{
			Month:      e.Month,
			Amount:     e.Amount,
			RecordedOn: e.RecordedOn.Format("2006-01-02"),
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
