package insight

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/finpilot/internal/http/identity"
	"github.com/MrJamesThe3rd/finpilot/internal/insight"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
)

type Handler struct {
	svc *insight.Service
}

func NewHandler(svc *insight.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{month}", h.summary)
}

type categoryResponse struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
	Budgeted float64 `json:"budgeted"`
	Spent    float64 `json:"spent"`
}

type overspendResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type summaryResponse struct {
	Month      month.Month         `json:"month"`
	Income     float64             `json:"income"`
	TotalSpent float64             `json:"total_spent"`
	Savings    float64             `json:"savings"`
	Categories []categoryResponse  `json:"categories"`
	Overspent  []overspendResponse `json:"overspent,omitempty"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID := identity.FromContext(r.Context())

	m, err := month.Parse(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	s := h.svc.MonthlySummary(r.Context(), userID, m)

	resp := summaryResponse{
		Month:      s.Month,
		Income:     s.Income,
		TotalSpent: s.TotalSpent,
		Savings:    s.Savings,
		Categories: make([]categoryResponse, len(s.Categories)),
	}

	for i, c := range s.Categories {
		resp.Categories[i] = categoryResponse{
			Category: c.Category,
			Percent:  c.Percent,
			Budgeted: c.Budgeted,
			Spent:    c.Spent,
		}
	}

	for _, o := range s.Overspent {
		resp.Overspent = append(resp.Overspent, overspendResponse{Category: o.Category, Amount: o.Amount})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
