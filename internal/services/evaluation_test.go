package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
)

func evaluationAnalysis() *AnalysisResult {
	daily := make([]models.DailyCost, 0, 60)
	base := day("2024-01-01")
	for i := 0; i < 60; i++ {
		cost := 1000 + 10*float64(i)
		daily = append(daily, models.DailyCost{
			Date: base.AddDate(0, 0, i),
			Cost: decimal.NewFromFloat(cost),
		})
	}
	return &AnalysisResult{
		TotalCost:      decimal.NewFromInt(77700),
		TotalIdleCost:  decimal.NewFromInt(7770),
		Records:        60,
		StartDate:      daily[0].Date,
		EndDate:        daily[len(daily)-1].Date,
		AvgUtilization: 75,
		DailyCosts:     daily,
		FinOps: FinOpsAggregates{
			TotalRequests:      100000,
			TotalUsageHours:    300,
			CoveredUsageHours:  210,
			TaggedRecords:      56,
			AvgRISPUtilization: 92,
			TotalBudget:        79000,
		},
	}
}

func TestEvaluationService_Evaluate(t *testing.T) {
	forecaster := NewForecaster(testForecastConfig(), testLogger())
	service := NewEvaluationService(forecaster, testLogger())

	report, err := service.Evaluate(evaluationAnalysis())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.GeneratedAt.IsZero())
	require.Len(t, report.ForecastMetrics, 10)
	assert.Equal(t, "MASE", report.MASE.Name)

	kpis := report.KPIs
	assert.Equal(t, 10.0, kpis.WasteRate)
	assert.Equal(t, 70.0, kpis.RISPCoverage)
	assert.Equal(t, 92.0, kpis.RISPUtilization)
	assert.InDelta(t, 93.33, kpis.TagCompliance, 0.001)
	assert.InDelta(t, -1.65, kpis.BudgetVariance.VariancePct, 0.01)
	assert.Greater(t, kpis.CAGR, 0.0, "rising spend must report positive growth")
	assert.Greater(t, kpis.CostVolatility, 0.0)

	require.NotEmpty(t, report.Summary)
	byName := map[string]models.SummaryRow{}
	for _, row := range report.Summary {
		byName[row.Name] = row
	}

	waste := byName["Waste Rate (%)"]
	assert.Equal(t, models.CategoryFinOpsKPI, waste.Category)
	assert.Equal(t, "10.00", waste.Value)
	assert.Equal(t, models.StatusPass, waste.Status)

	coverage := byName["RI/SP Coverage (%)"]
	assert.Equal(t, models.StatusPass, coverage.Status)

	tags := byName["Tag Compliance (%)"]
	assert.Equal(t, models.StatusPass, tags.Status)

	unit := byName["Unit Cost (INR)"]
	assert.Equal(t, models.StatusNotApplicable, unit.Status)
	assert.Equal(t, "-", unit.Target)

	cpu := byName["Avg CPU Utilization (%)"]
	assert.Equal(t, models.CategoryOperational, cpu.Category)
	assert.Equal(t, models.StatusPass, cpu.Status)

	mape := byName[MetricMAPE]
	assert.Equal(t, models.CategoryForecastAccuracy, mape.Category)
	assert.Equal(t, "≤15%", mape.Target)
	assert.NotEqual(t, "undefined", mape.Value)
}

func TestEvaluationService_Evaluate_ShortSeries(t *testing.T) {
	forecaster := NewForecaster(testForecastConfig(), testLogger())
	service := NewEvaluationService(forecaster, testLogger())

	analysis := &AnalysisResult{
		DailyCosts: []models.DailyCost{
			{Date: day("2024-01-01"), Cost: decimal.NewFromInt(100)},
			{Date: day("2024-01-02"), Cost: decimal.NewFromInt(110)},
		},
	}
	_, err := service.Evaluate(analysis)
	assert.Error(t, err)
}

func TestForecastStatus(t *testing.T) {
	tests := []struct {
		name   string
		metric models.MetricValue
		want   models.MetricStatus
	}{
		{"mape pass", models.MetricValue{Name: MetricMAPE, Value: 8.2, Defined: true}, models.StatusPass},
		{"mape review", models.MetricValue{Name: MetricMAPE, Value: 22.1, Defined: true}, models.StatusReview},
		{"r2 pass", models.MetricValue{Name: MetricR2, Value: 0.91, Defined: true}, models.StatusPass},
		{"r2 review", models.MetricValue{Name: MetricR2, Value: 0.42, Defined: true}, models.StatusReview},
		{"bias pct within band", models.MetricValue{Name: MetricBiasP, Value: -3.5, Defined: true}, models.StatusPass},
		{"picp below band", models.MetricValue{Name: MetricPICP, Value: 88, Defined: true}, models.StatusReview},
		{"picp in band", models.MetricValue{Name: MetricPICP, Value: 95, Defined: true}, models.StatusPass},
		{"undefined metric", models.MetricValue{Name: MetricMAPE, Defined: false}, models.StatusNotApplicable},
		{"unscored metric", models.MetricValue{Name: MetricMAE, Value: 12, Defined: true}, models.StatusNotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, forecastStatus(tt.metric))
		})
	}
}

func TestFormatMetric(t *testing.T) {
	assert.Equal(t, "undefined", formatMetric(models.MetricValue{Defined: false}))
	assert.Equal(t, "12.35", formatMetric(models.MetricValue{Value: 12.345, Defined: true}))
}
