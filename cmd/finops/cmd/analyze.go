package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/reports"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Aggregate the billing dataset and render the chart set",
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

		logger.WithFields(logrus.Fields{
			"total_cost":      analysis.TotalCost.StringFixed(2),
			"idle_cost":       analysis.TotalIdleCost.StringFixed(2),
			"avg_utilization": analysis.AvgUtilization,
			"opportunities":   len(analysis.Opportunities),
		}).Info("Analysis summary")

		charts := reports.NewChartRenderer(cfg.Reports.ChartsDir, logger)
		_, err = charts.RenderAll(analysis, nil)
		return err
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
