package models

// MetricCategory groups rows in the evaluation summary.
type MetricCategory string

const (
	CategoryForecastAccuracy MetricCategory = "Forecast Accuracy"
	CategoryFinOpsKPI        MetricCategory = "FinOps KPI"
	CategoryOperational      MetricCategory = "Operational"
)

// MetricStatus is the pass/review verdict against a metric's target band.
type MetricStatus string

const (
	StatusPass          MetricStatus = "Pass"
	StatusReview        MetricStatus = "Review"
	StatusNotApplicable MetricStatus = "N/A"
)

// MetricValue is one named metric with its defined/undefined marker.
// Undefined values (e.g. PICP without interval bounds, WAPE over an
// all-zero actual series) carry Defined=false and a zero Value.
type MetricValue struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// SummaryRow is one line of the comprehensive metrics summary CSV.
type SummaryRow struct {
	Category MetricCategory `json:"category" csv:"Metric Category"`
	Name     string         `json:"name" csv:"Metric Name"`
	Value    string         `json:"value" csv:"Value"`
	Target   string         `json:"target" csv:"Target"`
	Status   MetricStatus   `json:"status" csv:"Status"`
}

// BudgetVarianceResult carries both forms of budget variance: the absolute
// INR difference and the percentage of the budgeted amount.
type BudgetVarianceResult struct {
	VarianceINR float64 `json:"variance_inr"`
	VariancePct float64 `json:"variance_pct"`
}
