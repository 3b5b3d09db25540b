package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic AWS billing dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		generator := services.NewDatasetGenerator(&cfg.Generator, logger)
		records, err := generator.Generate()
		if err != nil {
			return err
		}

		if err := services.WriteRecordsCSV(cfg.Dataset.EnhancedPath, records); err != nil {
			return err
		}
		logger.WithField("path", cfg.Dataset.EnhancedPath).Info("Dataset written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
