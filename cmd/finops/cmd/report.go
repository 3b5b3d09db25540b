package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/config"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/reports"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
	"github.com/sirupsen/logrus"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the full deliverable set from the billing dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		records, err := loadRecords(cfg)
		if err != nil {
			return err
		}
		return renderDeliverables(cfg, logger, records)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// renderDeliverables runs analyze → forecast → evaluate and writes every
// report sink. Shared by the report and run commands.
func renderDeliverables(cfg *config.Config, logger *logrus.Logger, records []models.BillingRecord) error {
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

	evaluator := services.NewEvaluationService(forecaster, logger)
	evaluation, err := evaluator.Evaluate(analysis)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Reports.OutputDir, 0o755); err != nil {
		return err
	}

	summaryPath := filepath.Join(cfg.Reports.OutputDir, "comprehensive_metrics_summary.csv")
	if err := services.WriteSummaryCSV(summaryPath, evaluation.Summary); err != nil {
		return err
	}

	charts := reports.NewChartRenderer(cfg.Reports.ChartsDir, logger)
	if _, err := charts.RenderAll(analysis, forecast); err != nil {
		return err
	}

	excel := reports.NewExcelRenderer(logger)
	if err := excel.Render(filepath.Join(cfg.Reports.OutputDir, "finops_dashboard.xlsx"), analysis, evaluation); err != nil {
		return err
	}

	pdf := reports.NewPDFRenderer(logger)
	if err := pdf.Render(filepath.Join(cfg.Reports.OutputDir, "cost_optimization_report.pdf"), analysis, evaluation, forecast); err != nil {
		return err
	}

	dashboard := reports.NewDashboardRenderer(logger)
	if err := dashboard.Render(filepath.Join(cfg.Reports.OutputDir, "finops_dashboard.html"), analysis, evaluation, forecast); err != nil {
		return err
	}

	logger.WithField("dir", cfg.Reports.OutputDir).Info("Deliverable set complete")
	return nil
}
