package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
)

// KPIReport is the FinOps KPI battery computed from a cost analysis.
type KPIReport struct {
	WasteRate       float64                     `json:"waste_rate"`
	UnitCostINR     float64                     `json:"unit_cost_inr"`
	BudgetVariance  models.BudgetVarianceResult `json:"budget_variance"`
	RISPCoverage    float64                     `json:"ri_sp_coverage"`
	RISPUtilization float64                     `json:"ri_sp_utilization"`
	TagCompliance   float64                     `json:"tag_compliance"`
	CAGR            float64                     `json:"cagr"`
	CostVolatility  float64                     `json:"cost_volatility_cv"`
}

// EvaluationReport bundles the forecast-accuracy battery, the KPI battery
// and the flattened summary rows the report sinks render.
type EvaluationReport struct {
	RunID           string               `json:"run_id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	ForecastMetrics []models.MetricValue `json:"forecast_metrics"`
	MASE            models.MetricValue   `json:"mase"`
	KPIs            KPIReport            `json:"kpis"`
	Summary         []models.SummaryRow  `json:"summary"`
}

// EvaluationService runs the holdout demonstration of the metric battery
// and derives the FinOps KPIs from the analyzer's aggregates.
type EvaluationService struct {
	forecaster *Forecaster
	logger     *logrus.Logger
}

// NewEvaluationService creates an evaluation service.
func NewEvaluationService(forecaster *Forecaster, logger *logrus.Logger) *EvaluationService {
	return &EvaluationService{forecaster: forecaster, logger: logger}
}

// Evaluate splits the daily cost series chronologically, scores a trailing
// moving-average prediction over the test window with the full metric
// battery, computes the KPI battery from the analysis aggregates, and
// assembles the summary rows.
func (s *EvaluationService) Evaluate(analysis *AnalysisResult) (*EvaluationReport, error) {
	_, values := analysis.DailySeries()

	actual, predicted, err := s.forecaster.Holdout(values)
	if err != nil {
		return nil, err
	}

	evaluator, err := NewMetricsEvaluator(actual, predicted)
	if err != nil {
		return nil, err
	}

	report := &EvaluationReport{
		RunID:           uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		ForecastMetrics: evaluator.AllForecastMetrics(),
	}

	maseValue, maseOK := evaluator.MASE(evaluator.NaiveErrors())
	report.MASE = models.MetricValue{Name: "MASE", Value: maseValue, Defined: maseOK}

	report.KPIs = s.computeKPIs(analysis)
	report.Summary = buildSummary(report, analysis)

	s.logger.WithFields(logrus.Fields{
		"run_id":       report.RunID,
		"test_window":  len(actual),
		"summary_rows": len(report.Summary),
	}).Info("Metrics evaluation complete")

	return report, nil
}

func (s *EvaluationService) computeKPIs(analysis *AnalysisResult) KPIReport {
	totalCost := analysis.TotalCost.InexactFloat64()
	idleCost := analysis.TotalIdleCost.InexactFloat64()

	budgeted := analysis.FinOps.TotalBudget
	if budgeted <= 0 {
		// No budget column in the dataset; assume a budget 5% above actuals.
		budgeted = totalCost * 1.05
	}

	_, values := analysis.DailySeries()

	return KPIReport{
		WasteRate:       WasteRate(totalCost, idleCost),
		UnitCostINR:     UnitCost(totalCost, float64(analysis.FinOps.TotalRequests)),
		BudgetVariance:  BudgetVariance(totalCost, budgeted),
		RISPCoverage:    RISPCoverage(analysis.FinOps.TotalUsageHours, analysis.FinOps.CoveredUsageHours),
		RISPUtilization: analysis.FinOps.AvgRISPUtilization,
		TagCompliance:   TagCompliance(float64(analysis.Records), float64(analysis.FinOps.TaggedRecords)),
		CAGR:            spendCAGR(analysis),
		CostVolatility:  CoefficientOfVariation(values),
	}
}

// spendCAGR compares the mean of the first and last 30 daily observations
// across the dataset's span in years.
func spendCAGR(analysis *AnalysisResult) float64 {
	daily := analysis.DailyCosts
	if len(daily) < 2 {
		return 0
	}
	window := 30
	if len(daily) < window {
		window = len(daily)
	}
	initial := meanCost(daily[:window])
	final := meanCost(daily[len(daily)-window:])
	years := analysis.EndDate.Sub(analysis.StartDate).Hours() / 24 / 365.25
	return CAGR(initial, final, years)
}

func meanCost(daily []models.DailyCost) float64 {
	if len(daily) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, d := range daily {
		sum = sum.Add(d.Cost)
	}
	mean, _ := sum.Div(decimal.NewFromInt(int64(len(daily)))).Float64()
	return mean
}

// metric targets used for the pass/review verdicts in the summary
var forecastTargets = map[string]string{
	MetricMAPE:  "≤15%",
	MetricSMAPE: "≤15%",
	MetricWAPE:  "≤15%",
	MetricMdAPE: "≤15%",
	MetricR2:    "≥0.85",
	MetricBiasP: "±5%",
	MetricPICP:  "93-97%",
}

func buildSummary(report *EvaluationReport, analysis *AnalysisResult) []models.SummaryRow {
	rows := make([]models.SummaryRow, 0, len(report.ForecastMetrics)+10)

	for _, m := range report.ForecastMetrics {
		rows = append(rows, models.SummaryRow{
			Category: models.CategoryForecastAccuracy,
			Name:     m.Name,
			Value:    formatMetric(m),
			Target:   targetOrDash(forecastTargets[m.Name]),
			Status:   forecastStatus(m),
		})
	}

	kpis := report.KPIs
	rows = append(rows,
		kpiRow("Waste Rate (%)", kpis.WasteRate, "<15%", kpis.WasteRate < 15),
		models.SummaryRow{
			Category: models.CategoryFinOpsKPI,
			Name:     "Unit Cost (INR)",
			Value:    fmt.Sprintf("%.2f", kpis.UnitCostINR),
			Target:   "-",
			Status:   models.StatusNotApplicable,
		},
		kpiRow("Budget Variance (%)", kpis.BudgetVariance.VariancePct, "±5%", abs(kpis.BudgetVariance.VariancePct) <= 5),
		kpiRow("RI/SP Coverage (%)", kpis.RISPCoverage, "60-80%", kpis.RISPCoverage >= 60 && kpis.RISPCoverage <= 80),
		kpiRow("RI/SP Utilization (%)", kpis.RISPUtilization, "≥90%", kpis.RISPUtilization >= 90),
		kpiRow("Tag Compliance (%)", kpis.TagCompliance, "≥90%", kpis.TagCompliance >= 90),
		models.SummaryRow{
			Category: models.CategoryFinOpsKPI,
			Name:     "CAGR (%)",
			Value:    fmt.Sprintf("%.2f", kpis.CAGR),
			Target:   "-",
			Status:   models.StatusNotApplicable,
		},
	)

	rows = append(rows,
		models.SummaryRow{
			Category: models.CategoryOperational,
			Name:     "Spending Volatility (CV %)",
			Value:    fmt.Sprintf("%.2f", kpis.CostVolatility),
			Target:   "<20%",
			Status:   passOrReview(kpis.CostVolatility < 20),
		},
		models.SummaryRow{
			Category: models.CategoryOperational,
			Name:     "Avg CPU Utilization (%)",
			Value:    fmt.Sprintf("%.2f", analysis.AvgUtilization),
			Target:   "≥70%",
			Status:   passOrReview(analysis.AvgUtilization >= 70),
		},
	)

	return rows
}

func kpiRow(name string, value float64, target string, pass bool) models.SummaryRow {
	return models.SummaryRow{
		Category: models.CategoryFinOpsKPI,
		Name:     name,
		Value:    fmt.Sprintf("%.2f", value),
		Target:   target,
		Status:   passOrReview(pass),
	}
}

func formatMetric(m models.MetricValue) string {
	if !m.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", m.Value)
}

func forecastStatus(m models.MetricValue) models.MetricStatus {
	if !m.Defined {
		return models.StatusNotApplicable
	}
	switch m.Name {
	case MetricMAPE, MetricSMAPE, MetricWAPE, MetricMdAPE:
		return passOrReview(m.Value <= 15)
	case MetricR2:
		return passOrReview(m.Value >= 0.85)
	case MetricBiasP:
		return passOrReview(abs(m.Value) <= 5)
	case MetricPICP:
		return passOrReview(m.Value >= 93 && m.Value <= 97)
	default:
		return models.StatusNotApplicable
	}
}

func passOrReview(pass bool) models.MetricStatus {
	if pass {
		return models.StatusPass
	}
	return models.StatusReview
}

func targetOrDash(target string) string {
	if target == "" {
		return "-"
	}
	return target
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
