package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/config"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/logging"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var inputPath string

var rootCmd = &cobra.Command{
	Use:   "finops",
	Short: "AWS cost analytics and reporting pipeline",
	Long: `finops ingests an AWS billing dataset, cleans it, computes cost and
FinOps metrics, forecasts future spend and renders the results into
spreadsheets, PDF reports, dashboards and chart images.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "billing CSV to analyze (defaults to the configured dataset paths)")
}

// bootstrap loads configuration and builds the logger every command shares.
func bootstrap() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.Environment)
	return cfg, logger, nil
}

// loadRecords reads billing records from the --input override or the first
// configured dataset that exists on disk.
func loadRecords(cfg *config.Config) ([]models.BillingRecord, error) {
	candidates := []string{inputPath, cfg.Dataset.EnhancedPath, cfg.Dataset.CleanedPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return services.ReadRecordsCSV(path)
	}
	return nil, fmt.Errorf("no billing dataset found; run 'finops generate' or pass --input")
}
