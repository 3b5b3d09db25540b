package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

func TestDatasetCleaner_Clean(t *testing.T) {
	raw := strings.Join([]string{
		"Date, Service ,Region,Usage Hours,CPU Utilization (%),Cost USD",
		"2024-03-01,EC2,US-EAST-1,12.5,64.2,150.75",
		"2024-03-01,EC2,US-EAST-1,12.5,64.2,150.75",
		"2024/03/02,rds,us-west-2,8,,90.10",
		"02-04-2024,S3,ap-south-1,24,n/a,not-a-number",
		",Lambda,us-east-1,1,10,5",
		"garbage,Lambda,us-east-1,1,10,5",
	}, "\n")

	cleaner := NewDatasetCleaner(testLogger())
	records, summary, err := cleaner.Clean(strings.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, 6, summary.RowsIn)
	assert.Equal(t, 3, summary.RowsOut)
	assert.Equal(t, 1, summary.DuplicatesRemoved)
	assert.Equal(t, 2, summary.MissingDateRows)
	assert.Equal(t, 3, summary.CoercedValues)

	first := records[0]
	assert.Equal(t, "2024-03-01", first.Date.Format("2006-01-02"))
	assert.Equal(t, "ec2", first.Service)
	assert.Equal(t, "us-east-1", first.Region)
	assert.Equal(t, 12.5, first.UsageHours)
	assert.Equal(t, 64.2, first.CPUUtilization)
	assert.Equal(t, "150.75", first.CostUSD.String())

	second := records[1]
	assert.Equal(t, "2024-03-02", second.Date.Format("2006-01-02"))
	assert.Equal(t, 0.0, second.CPUUtilization)

	third := records[2]
	assert.Equal(t, "2024-04-02", third.Date.Format("2006-01-02"))
	assert.Equal(t, 0.0, third.CPUUtilization)
	assert.True(t, third.CostUSD.IsZero())
}

func TestDatasetCleaner_NoDateColumn(t *testing.T) {
	raw := "Service,Cost USD\nEC2,100\n"

	_, _, err := NewDatasetCleaner(testLogger()).Clean(strings.NewReader(raw))
	require.Error(t, err)
	var verr *utils.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDatasetCleaner_EmptyInput(t *testing.T) {
	_, _, err := NewDatasetCleaner(testLogger()).Clean(strings.NewReader(""))
	assert.Error(t, err)
}

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Date", "date"},
		{"  Cost USD ", "cost_usd"},
		{"CPU Utilization (%)", "cpu_utilization_percent"},
		{"CPU Utilization(%)", "cpu_utilizationpercent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeColumn(tt.in), tt.in)
	}
}
