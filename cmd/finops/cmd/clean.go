package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/services"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a raw billing CSV export",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		path := cfg.Dataset.RawPath
		if inputPath != "" {
			path = inputPath
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		cleaner := services.NewDatasetCleaner(logger)
		records, _, err := cleaner.Clean(f)
		if err != nil {
			return err
		}

		if err := services.WriteRecordsCSV(cfg.Dataset.CleanedPath, records); err != nil {
			return err
		}
		logger.WithField("path", cfg.Dataset.CleanedPath).Info("Cleaned dataset written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
