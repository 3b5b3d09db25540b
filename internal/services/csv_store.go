package services

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

func init() {
	// Files whose headers do not match the record schema must be rejected,
	// not decoded into zero-valued records. Raw exports go through the
	// cleaner first.
	gocsv.FailIfUnmatchedStructTags = true
}

// WriteRecordsCSV writes billing records to path, creating parent
// directories as needed.
func WriteRecordsCSV(path string, records []models.BillingRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&records, f)
}

// ReadRecordsCSV loads billing records previously written by
// WriteRecordsCSV.
func ReadRecordsCSV(path string) ([]models.BillingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var records []models.BillingRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Date.IsZero() {
			return nil, utils.NewValidationErrorf("%s: row %d has no date; clean raw exports before analysis", path, i+1)
		}
	}
	return records, nil
}

// WriteSummaryCSV writes the comprehensive metrics summary rows.
func WriteSummaryCSV(path string, rows []models.SummaryRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&rows, f)
}
