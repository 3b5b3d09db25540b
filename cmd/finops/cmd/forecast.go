package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/reports"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast future spend from the daily cost series",
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
		dates, values := analysis.DailySeries()
		forecast, err := forecaster.Forecast(dates, values)
		if err != nil {
			return err
		}

		charts := reports.NewChartRenderer(cfg.Reports.ChartsDir, logger)
		_, err = charts.RenderAll(analysis, forecast)
		return err
	},
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}
