package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingRecord represents a single cleaned line item of AWS spend with the
// FinOps attributes attached by the dataset generator.
type BillingRecord struct {
	Date                   time.Time       `json:"date" csv:"date"`
	Service                string          `json:"service" csv:"service"`
	Region                 string          `json:"region" csv:"region"`
	UsageHours             float64         `json:"usage_hours" csv:"usage_hours"`
	CPUUtilization         float64         `json:"cpu_utilization" csv:"cpu_utilization"`
	CostUSD                decimal.Decimal `json:"cost_usd" csv:"cost_usd"`
	CostINR                decimal.Decimal `json:"cost_inr" csv:"cost_inr"`
	IdleCostINR            decimal.Decimal `json:"idle_cost_inr" csv:"idle_cost_inr"`
	HasRequiredTags        bool            `json:"has_required_tags" csv:"has_required_tags"`
	CoveredByRISP          bool            `json:"is_covered_by_ri_sp" csv:"is_covered_by_ri_sp"`
	RISPUtilization        float64         `json:"ri_sp_utilization" csv:"ri_sp_utilization"`
	RightsizingOpportunity string          `json:"rightsizing_opportunity" csv:"rightsizing_opportunity"`
	PotentialSavingsINR    decimal.Decimal `json:"potential_savings_inr" csv:"potential_savings_inr"`
	StorageClass           string          `json:"storage_class" csv:"storage_class"`
	OwnerTeam              string          `json:"owner_team" csv:"owner_team"`
	Environment            string          `json:"environment" csv:"environment"`
	RequestsPerDay         int             `json:"requests_per_day" csv:"requests_per_day"`
	UnitCostINR            decimal.Decimal `json:"unit_cost_inr" csv:"unit_cost_inr"`
	DailyBudgetINR         decimal.Decimal `json:"daily_budget_inr" csv:"daily_budget_inr"`
	BudgetVarianceINR      decimal.Decimal `json:"budget_variance_inr" csv:"budget_variance_inr"`
	BudgetVariancePct      float64         `json:"budget_variance_pct" csv:"budget_variance_pct"`
	IsAnomaly              bool            `json:"is_anomaly" csv:"is_anomaly"`
}

// Rightsizing opportunity labels attached by the generator and consumed by
// the analyzer when sizing savings.
const (
	RightsizingDownsize = "Downsize"
	RightsizingUpsize   = "Upsize"
	RightsizingOptimal  = "Optimal"
)

// DailyCost is total spend aggregated over one calendar day.
type DailyCost struct {
	Date time.Time       `json:"date"`
	Cost decimal.Decimal `json:"cost"`
}

// MonthlyCost is total spend aggregated over one calendar month.
type MonthlyCost struct {
	Month string          `json:"month"` // YYYY-MM
	Cost  decimal.Decimal `json:"cost"`
}

// ServiceSummary aggregates spend and utilization per AWS service.
type ServiceSummary struct {
	Service        string          `json:"service"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	IdleCost       decimal.Decimal `json:"idle_cost"`
	AvgUtilization float64         `json:"avg_utilization"`
	Records        int             `json:"records"`
	SharePct       float64         `json:"share_pct"`
}

// RegionalSummary aggregates spend per AWS region.
type RegionalSummary struct {
	Region    string          `json:"region"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Records   int             `json:"records"`
	SharePct  float64         `json:"share_pct"`
}

// Opportunity is a concrete cost-optimization candidate surfaced by the
// analyzer: a low-utilization resource with an estimated saving.
type Opportunity struct {
	Date             time.Time       `json:"date"`
	Service          string          `json:"service"`
	Region           string          `json:"region"`
	CPUUtilization   float64         `json:"cpu_utilization"`
	Cost             decimal.Decimal `json:"cost"`
	EstimatedSavings decimal.Decimal `json:"estimated_savings"`
	Recommendation   string          `json:"recommendation"`
}
