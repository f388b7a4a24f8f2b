package predict

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finpilot/internal/http/identity"
	"github.com/MrJamesThe3rd/finpilot/internal/predict"
)

// IncomeSource supplies the declared income used to classify a predicted
// savings amount into a tier.
type IncomeSource interface {
	Amount(ctx context.Context, userID uuid.UUID) (float64, error)
}

// Handler serves predictions from the two trained models. Either predictor
// may be nil when its artifact has not been trained yet; the corresponding
// endpoint then answers 503.
type Handler struct {
	savings  *predict.Predictor
	spending *predict.Predictor
	incomes  IncomeSource
}

func NewHandler(savings, spending *predict.Predictor, incomes IncomeSource) *Handler {
	return &Handler{savings: savings, spending: spending, incomes: incomes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/savings", h.predictSavings)
	r.Post("/spending", h.predictSpending)
}

type predictRequest struct {
	Numeric     map[string]float64 `json:"numeric"`
	Categorical map[string]string  `json:"categorical"`
}

type savingsResponse struct {
	Prediction float64      `json:"prediction"`
	Tier       predict.Tier `json:"tier"`
	Forecast   []float64    `json:"forecast"`
}

func (h *Handler) predictSavings(w http.ResponseWriter, r *http.Request) {
	if h.savings == nil {
		http.Error(w, "savings model not trained", http.StatusServiceUnavailable)
		return
	}

	userID := identity.FromContext(r.Context())

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	prediction, err := h.savings.Predict(predict.Observation{
		Numeric:     req.Numeric,
		Categorical: req.Categorical,
	})
	if err != nil {
		if errors.Is(err, predict.ErrObservationSchema) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	income, err := h.incomes.Amount(r.Context(), userID)
	if err != nil {
		slog.Warn("predict: income unavailable, tier defaults to Low", "user_id", userID, "error", err)

		income = 0
	}

	resp := savingsResponse{
		Prediction: prediction,
		Tier:       predict.ClassifySavings(prediction, income),
		Forecast:   predict.Forecast(prediction, predict.DefaultForecastHorizon),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type spendingResponse struct {
	Prediction float64 `json:"prediction"`
}

func (h *Handler) predictSpending(w http.ResponseWriter, r *http.Request) {
	if h.spending == nil {
		http.Error(w, "spending model not trained", http.StatusServiceUnavailable)
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	prediction, err := h.spending.Predict(predict.Observation{
		Numeric:     req.Numeric,
		Categorical: req.Categorical,
	})
	if err != nil {
		if errors.Is(err, predict.ErrObservationSchema) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(spendingResponse{Prediction: prediction}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
