package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

func TestWriteReadRecordsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.csv")

	records := []models.BillingRecord{
		{
			Date:            day("2024-05-01").UTC(),
			Service:         "EC2",
			Region:          "us-east-1",
			UsageHours:      12.5,
			CPUUtilization:  64.2,
			CostUSD:         decimal.NewFromFloat(150.75),
			CostINR:         decimal.NewFromFloat(12534.86),
			HasRequiredTags: true,
			CoveredByRISP:   true,
			RISPUtilization: 91.5,
			RequestsPerDay:  120000,
		},
	}

	require.NoError(t, WriteRecordsCSV(path, records))

	loaded, err := ReadRecordsCSV(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[0]
	assert.True(t, got.Date.Equal(records[0].Date))
	assert.Equal(t, "EC2", got.Service)
	assert.Equal(t, "150.75", got.CostUSD.String())
	assert.True(t, got.HasRequiredTags)
	assert.Equal(t, 120000, got.RequestsPerDay)
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	rows := []models.SummaryRow{
		{
			Category: models.CategoryForecastAccuracy,
			Name:     "MAPE (%)",
			Value:    "8.21",
			Target:   "≤15%",
			Status:   models.StatusPass,
		},
	}
	require.NoError(t, WriteSummaryCSV(path, rows))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.True(t, strings.Contains(content, "Metric Category"))
	assert.True(t, strings.Contains(content, "MAPE (%)"))
	assert.True(t, strings.Contains(content, "Pass"))
}

func TestReadRecordsCSV_RawExportRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.csv")
	raw := "Date,Service,Region,Usage Hours,CPU Utilization (%),Cost USD\n" +
		"2024-03-01,EC2,us-east-1,12.5,64.2,150.75\n" +
		"2024-03-02,RDS,us-west-2,8,55.0,90.10\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := ReadRecordsCSV(path)
	require.Error(t, err, "raw export headers must not decode into zero-valued records")
}

func TestReadRecordsCSV_ZeroDateRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, WriteRecordsCSV(path, []models.BillingRecord{{Service: "EC2"}}))

	_, err := ReadRecordsCSV(path)
	require.Error(t, err)
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReadRecordsCSV_MissingFile(t *testing.T) {
	_, err := ReadRecordsCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
