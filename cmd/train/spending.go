package main

import (
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/pipeline"
)

var (
	spendingTarget      string
	spendingCategorical []string
	spendingDrop        []string
)

func init() {
	spendingCmd.Flags().StringVar(&spendingTarget, "target", "spending", "target column")
	spendingCmd.Flags().StringSliceVar(&spendingCategorical, "categorical", []string{"gender", "education", "country"}, "categorical columns to one-hot encode")
	spendingCmd.Flags().StringSliceVar(&spendingDrop, "drop", []string{"name"}, "columns to exclude from training")

	rootCmd.AddCommand(spendingCmd)
}

var spendingCmd = &cobra.Command{
	Use:   "spending",
	Short: "Train the spending model",
	Long: `Train the spending regression model: one-hot encode the categorical
columns and fit the forest on every feature, unscaled.

Examples:
  # Train with defaults
  train spending --data data/external/customer_data.csv --out ml/spending_model.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(pipeline.Config{
			Target:      spendingTarget,
			Categorical: spendingCategorical,
			Drop:        spendingDrop,
		})
	},
}
