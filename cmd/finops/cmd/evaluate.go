package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the forecast-accuracy and FinOps KPI batteries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		records, err := loadRecords(cfg)
		if err != nil {
			return err
		}

		analyzer := services.NewCostAnalyzer(logger)
		analysis, err := analyzer.Analyze(records)
		if err != nil {
			return err
		}

		forecaster := services.NewForecaster(&cfg.Forecast, logger)
		evaluator := services.NewEvaluationService(forecaster, logger)
		evaluation, err := evaluator.Evaluate(analysis)
		if err != nil {
			return err
		}

		path := filepath.Join(cfg.Reports.OutputDir, "comprehensive_metrics_summary.csv")
		if err := services.WriteSummaryCSV(path, evaluation.Summary); err != nil {
			return err
		}
		logger.WithField("path", path).Info("Metrics summary written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
