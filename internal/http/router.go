package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/finpilot/internal/http/budget"
	"github.com/MrJamesThe3rd/finpilot/internal/http/expense"
	"github.com/MrJamesThe3rd/finpilot/internal/http/identity"
	"github.com/MrJamesThe3rd/finpilot/internal/http/income"
	"github.com/MrJamesThe3rd/finpilot/internal/http/insight"
	"github.com/MrJamesThe3rd/finpilot/internal/http/predict"
	"github.com/MrJamesThe3rd/finpilot/internal/http/profile"
	"github.com/MrJamesThe3rd/finpilot/internal/http/savings"
)

func New(
	incomeV1 *income.Handler,
	budgetV1 *budget.Handler,
	expenseV1 *expense.Handler,
	savingsV1 *savings.Handler,
	insightV1 *insight.Handler,
	profileV1 *profile.Handler,
	predictV1 *predict.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", identity.Header},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(identity.Middleware)

		r.Route("/income", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			incomeV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expenseV1.Routes(r)
		})

		r.Route("/savings", savingsV1.Routes)

		r.Route("/insights", insightV1.Routes)

		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			profileV1.Routes(r)
		})

		r.Route("/predict", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			predictV1.Routes(r)
		})
	})

	return router
}
