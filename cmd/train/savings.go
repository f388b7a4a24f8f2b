package main

import (
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/pipeline"
)

var (
	savingsTarget      string
	savingsCategorical []string
	savingsThreshold   float64
)

func init() {
	savingsCmd.Flags().StringVar(&savingsTarget, "target", "Desired_Savings", "target column")
	savingsCmd.Flags().StringSliceVar(&savingsCategorical, "categorical", []string{"Occupation", "City_Tier"}, "categorical columns to one-hot encode")
	savingsCmd.Flags().Float64Var(&savingsThreshold, "threshold", 0.01, "minimum feature importance to keep")

	rootCmd.AddCommand(savingsCmd)
}

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Train the desired-savings model",
	Long: `Train the desired-savings regression model: one-hot encode the
categorical columns, standardize the features, drop those below the
importance threshold and retrain on the survivors.

Examples:
  # Train with defaults
  train savings --data data/external/data.csv --out ml/savings_model.json

  # Reproduce a run with a specific seed
  train savings --data data.csv --out savings.json --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(pipeline.Config{
			Target:              savingsTarget,
			Categorical:         savingsCategorical,
			Scale:               true,
			SelectFeatures:      true,
			ImportanceThreshold: savingsThreshold,
		})
	},
}
