package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: generate, analyze, forecast, evaluate, report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		var records []models.BillingRecord
		if records, err = loadRecords(cfg); err != nil {
			logger.Info("No dataset on disk, generating one")
			generator := services.NewDatasetGenerator(&cfg.Generator, logger)
			records, err = generator.Generate()
			if err != nil {
				return err
			}
			if err := services.WriteRecordsCSV(cfg.Dataset.EnhancedPath, records); err != nil {
				return err
			}
		}

		return renderDeliverables(cfg, logger, records)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
