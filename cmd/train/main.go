// Package main implements the model training CLI. It reads a CSV dataset,
// runs the training pipeline and writes the artifact the API serves
// predictions from.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/finpilot/internal/ml/artifact"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/dataset"
	"github.com/MrJamesThe3rd/finpilot/internal/ml/pipeline"
)

var (
	dataPath string
	outPath  string
	seed     int64
	trees    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the savings and spending prediction models",
	Long: `train fits a prediction model on a CSV dataset and writes the model
artifact as a JSON bundle. The API server loads these bundles at startup.

The same dataset and seed always reproduce the same model.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the training CSV (required)")
	rootCmd.PersistentFlags().StringVar(&outPath, "out", "", "path to write the model artifact (required)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "random seed for the split and the forest")
	rootCmd.PersistentFlags().IntVar(&trees, "trees", 100, "number of trees in the forest")

	_ = rootCmd.MarkPersistentFlagRequired("data")
	_ = rootCmd.MarkPersistentFlagRequired("out")
}

// run loads the dataset, trains with the given config and persists the
// artifact. Metrics are reported but never block persisting.
func run(cfg pipeline.Config) error {
	table, err := dataset.Open(dataPath)
	if err != nil {
		return err
	}

	cfg.Seed = seed
	cfg.Forest.Trees = trees

	bundle, err := pipeline.Run(table, cfg)
	if err != nil {
		return err
	}

	if err := artifact.Save(outPath, bundle); err != nil {
		return err
	}

	fmt.Printf("model trained on %d rows\n", table.Len())
	fmt.Printf("  features: %v\n", bundle.Features)
	fmt.Printf("  RMSE: %.2f\n", bundle.Metrics.RMSE)
	fmt.Printf("  R2:   %.2f\n", bundle.Metrics.R2)
	fmt.Printf("artifact written to %s\n", outPath)

	return nil
}
