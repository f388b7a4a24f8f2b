package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/finpilot/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/finpilot/internal/budget/store"
	"github.com/MrJamesThe3rd/finpilot/internal/config"
	"github.com/MrJamesThe3rd/finpilot/internal/database"
	"github.com/MrJamesThe3rd/finpilot/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/finpilot/internal/expense/store"
	finpilotHttp "github.com/MrJamesThe3rd/finpilot/internal/http"
	budgetHandler "github.com/MrJamesThe3rd/finpilot/internal/http/budget"
	expenseHandler "github.com/MrJamesThe3rd/finpilot/internal/http/expense"
	incomeHandler "github.com/MrJamesThe3rd/finpilot/internal/http/income"
	insightHandler "github.com/MrJamesThe3rd/finpilot/internal/http/insight"
	predictHandler "github.com/MrJamesThe3rd/finpilot/internal/http/predict"
	profileHandler "github.com/MrJamesThe3rd/finpilot/internal/http/profile"
	savingsHandler "github.com/MrJamesThe3rd/finpilot/internal/http/savings"
	"github.com/MrJamesThe3rd/finpilot/internal/income"
	incomeStore "github.com/MrJamesThe3rd/finpilot/internal/income/store"
	"github.com/MrJamesThe3rd/finpilot/internal/insight"
	"github.com/MrJamesThe3rd/finpilot/internal/month"
	"github.com/MrJamesThe3rd/finpilot/internal/predict"
	"github.com/MrJamesThe3rd/finpilot/internal/profile"
	profileStore "github.com/MrJamesThe3rd/finpilot/internal/profile/store"
	"github.com/MrJamesThe3rd/finpilot/internal/savings"
	savingsStore "github.com/MrJamesThe3rd/finpilot/internal/savings/store"
)

// lateSpendSource breaks the construction cycle between the savings
// reconciler and the expense ledger: the reconciler is built first and the
// ledger is bound afterwards.
type lateSpendSource struct {
	svc *expense.Service
}

func (s *lateSpendSource) TotalSpent(ctx context.Context, userID uuid.UUID, m month.Month) (float64, error) {
	return s.svc.TotalSpent(ctx, userID, m)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	spend := &lateSpendSource{}

	var (
		incomeService  = income.NewService(incomeStore.New(db))
		savingsService = savings.NewService(savingsStore.New(db), incomeService, spend)
		budgetService  = budget.NewService(budgetStore.New(db), savingsService)
		expenseService = expense.NewService(expenseStore.New(db), incomeService, budgetService, savingsService)
		profileService = profile.NewService(profileStore.New(db), savingsService)
		insightService = insight.NewService(incomeService, budgetService, expenseService, savingsService)
	)

	spend.svc = expenseService

	savingsModel := loadModel(cfg.Models.SavingsPath)
	spendingModel := loadModel(cfg.Models.SpendingPath)

	var (
		incomeH  = incomeHandler.NewHandler(incomeService)
		budgetH  = budgetHandler.NewHandler(budgetService)
		expenseH = expenseHandler.NewHandler(expenseService)
		savingsH = savingsHandler.NewHandler(savingsService)
		insightH = insightHandler.NewHandler(insightService)
		profileH = profileHandler.NewHandler(profileService)
		predictH = predictHandler.NewHandler(savingsModel, spendingModel, incomeService)
	)

	router := finpilotHttp.New(incomeH, budgetH, expenseH, savingsH, insightH, profileH, predictH, cfg.Server.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// loadModel loads a trained artifact, or returns nil so the API starts
// without prediction endpoints until cmd/train has produced one.
func loadModel(path string) *predict.Predictor {
	p, err := predict.Open(path)
	if err != nil {
		slog.Warn("model not loaded", "path", path, "error", err)
		return nil
	}

	slog.Info("model loaded", "path", path, "target", p.Target())

	return p
}
