package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

// CleanSummary reports what the cleaning pass changed.
type CleanSummary struct {
	RowsIn            int `json:"rows_in"`
	RowsOut           int `json:"rows_out"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	MissingDateRows   int `json:"missing_date_rows"`
	CoercedValues     int `json:"coerced_values"`
}

// DatasetCleaner normalizes a raw billing export into typed records:
// duplicate rows removed, headers standardized, dates parsed with coercion,
// service/region lowercased, numeric fields coerced with a zero fallback,
// rows without a parseable date dropped.
type DatasetCleaner struct {
	logger *logrus.Logger
}

// NewDatasetCleaner creates a cleaner.
func NewDatasetCleaner(logger *logrus.Logger) *DatasetCleaner {
	return &DatasetCleaner{logger: logger}
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"01/02/2006",
	"2006-01-02T15:04:05Z07:00",
}

// Clean reads a raw CSV export and returns cleaned records with a summary.
// A malformed header (no recognizable date column) is a contract violation
// and fails fast; malformed cells inside rows are coerced, never fatal.
func (c *DatasetCleaner) Clean(r io.Reader) ([]models.BillingRecord, *CleanSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, utils.NewValidationErrorf("failed to read CSV header: %v", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[normalizeColumn(name)] = i
	}
	dateIdx, ok := cols["date"]
	if !ok {
		return nil, nil, utils.NewValidationError("CSV has no date column")
	}

	summary := &CleanSummary{}
	seen := map[string]struct{}{}
	var records []models.BillingRecord

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, utils.NewValidationErrorf("failed to read CSV row: %v", err)
		}
		summary.RowsIn++

		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			summary.DuplicatesRemoved++
			continue
		}
		seen[key] = struct{}{}

		date, ok := parseDate(cell(row, dateIdx))
		if !ok {
			summary.MissingDateRows++
			continue
		}

		rec := models.BillingRecord{
			Date:    date,
			Service: strings.ToLower(strings.TrimSpace(cellNamed(row, cols, "service"))),
			Region:  strings.ToLower(strings.TrimSpace(cellNamed(row, cols, "region"))),
		}
		rec.UsageHours = c.coerceFloat(cellNamed(row, cols, "usage_hours"), summary)
		rec.CPUUtilization = c.coerceFloat(firstCell(row, cols, "cpu_utilization_percent", "cpu_utilizationpercent", "cpu_utilization"), summary)
		rec.CostUSD = decimal.NewFromFloat(c.coerceFloat(cellNamed(row, cols, "cost_usd"), summary))

		records = append(records, rec)
	}

	summary.RowsOut = len(records)
	c.logger.WithFields(logrus.Fields{
		"rows_in":            summary.RowsIn,
		"rows_out":           summary.RowsOut,
		"duplicates_removed": summary.DuplicatesRemoved,
		"missing_date_rows":  summary.MissingDateRows,
		"coerced_values":     summary.CoercedValues,
	}).Info("Cleaned billing dataset")

	return records, summary, nil
}

// normalizeColumn standardizes a header name: trimmed, lowercased, spaces to
// underscores, "(%)" collapsed to "percent".
func normalizeColumn(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "(%)", "percent")
	n = strings.ReplaceAll(n, " ", "_")
	return n
}

func parseDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (c *DatasetCleaner) coerceFloat(value string, summary *CleanSummary) float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		summary.CoercedValues++
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		summary.CoercedValues++
		return 0
	}
	return f
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cellNamed(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok {
		return ""
	}
	return cell(row, idx)
}

func firstCell(row []string, cols map[string]int, names ...string) string {
	for _, name := range names {
		if _, ok := cols[name]; ok {
			return cellNamed(row, cols, name)
		}
	}
	return ""
}
