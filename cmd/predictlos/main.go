// Command predictlos runs the long-stay classification analysis end to end
// over a CMS inpatient claims extract and prints the report.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/KendraBlalock/Predict-LOS/pkg/pipeline"
)

func main() {
	var (
		dataPath string
		seed     int64
		knnK     int
		plotDir  string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:           "predictlos --data claims.csv",
		Short:         "Classify inpatient claims into long and short stays",
		Long:          "Fits four classifiers (naive bayes, knn, logistic regression, linear svm) on an inpatient claims extract, compares validation misclassification rates, and reports the best variant's test-partition score.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pipeline.DefaultConfig(dataPath)
			cfg.Seed = seed
			cfg.KNNNeighbors = knnK
			cfg.PlotDir = plotDir
			cfg.StrictSplit = strict
			_, err := pipeline.Run(cfg)
			return err
		},
	}

	defaults := pipeline.DefaultConfig("")
	cmd.Flags().StringVar(&dataPath, "data", "", "path to the inpatient claims CSV (required)")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "random seed for the stratified splits")
	cmd.Flags().IntVar(&knnK, "knn-k", defaults.KNNNeighbors, "neighbour count for the knn variant")
	cmd.Flags().StringVar(&plotDir, "plot-dir", ".", "directory for the naive bayes diagnostic plots (empty disables)")
	cmd.Flags().BoolVar(&strict, "strict-split", false, "fail on strata too sparse to appear in every partition")
	cobra.CheckErr(cmd.MarkFlagRequired("data"))

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
