package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

// AnalysisResult is the full output of a cost analysis pass: aggregate
// totals, time-bucketed series, per-dimension summaries and the optimization
// opportunities found.
type AnalysisResult struct {
	TotalCost             decimal.Decimal          `json:"total_cost"`
	TotalIdleCost         decimal.Decimal          `json:"total_idle_cost"`
	TotalPotentialSavings decimal.Decimal          `json:"total_potential_savings"`
	Records               int                      `json:"records"`
	StartDate             time.Time                `json:"start_date"`
	EndDate               time.Time                `json:"end_date"`
	AvgUtilization        float64                  `json:"avg_utilization"`
	AnomalyCount          int                      `json:"anomaly_count"`
	DailyCosts            []models.DailyCost       `json:"daily_costs"`
	MonthlyCosts          []models.MonthlyCost     `json:"monthly_costs"`
	ServiceSummaries      []models.ServiceSummary  `json:"service_summaries"`
	RegionalSummaries     []models.RegionalSummary `json:"regional_summaries"`
	Opportunities         []models.Opportunity     `json:"opportunities"`
	FinOps                FinOpsAggregates         `json:"finops"`
}

// FinOpsAggregates carries the raw sums the KPI formulas consume.
type FinOpsAggregates struct {
	TotalRequests      int     `json:"total_requests"`
	TotalUsageHours    float64 `json:"total_usage_hours"`
	CoveredUsageHours  float64 `json:"covered_usage_hours"`
	TaggedRecords      int     `json:"tagged_records"`
	AvgRISPUtilization float64 `json:"avg_ri_sp_utilization"`
	TotalBudget        float64 `json:"total_budget"`
}

// DailySeries unpacks the daily cost aggregation into parallel date/value
// slices for forecasting and plotting.
func (r *AnalysisResult) DailySeries() ([]time.Time, []float64) {
	dates := make([]time.Time, len(r.DailyCosts))
	values := make([]float64, len(r.DailyCosts))
	for i, d := range r.DailyCosts {
		dates[i] = d.Date
		values[i] = d.Cost.InexactFloat64()
	}
	return dates, values
}

// CostAnalyzer aggregates cleaned billing records into the summaries the
// reports and the forecaster consume. Costs are taken in INR when present,
// falling back to USD for datasets cleaned before enhancement.
type CostAnalyzer struct {
	logger *logrus.Logger
}

// NewCostAnalyzer creates an analyzer.
func NewCostAnalyzer(logger *logrus.Logger) *CostAnalyzer {
	return &CostAnalyzer{logger: logger}
}

// utilization below this marks a rightsizing candidate
const lowUtilizationThreshold = 40.0

// Analyze runs the full aggregation pass over the given records.
func (a *CostAnalyzer) Analyze(records []models.BillingRecord) (*AnalysisResult, error) {
	if len(records) == 0 {
		return nil, utils.NewValidationError("no billing records to analyze")
	}

	result := &AnalysisResult{Records: len(records)}

	daily := map[string]decimal.Decimal{}
	monthly := map[string]decimal.Decimal{}
	serviceTotals := map[string]*models.ServiceSummary{}
	regionTotals := map[string]*models.RegionalSummary{}
	serviceUtilSums := map[string]float64{}
	serviceUtilCounts := map[string]int{}

	var utilSum float64
	var utilCount int
	var riUtilSum float64
	var riUtilCount int

	result.StartDate = records[0].Date
	result.EndDate = records[0].Date

	for _, rec := range records {
		cost := recordCost(rec)
		idle := idleCost(rec, cost)

		result.TotalCost = result.TotalCost.Add(cost)
		result.TotalIdleCost = result.TotalIdleCost.Add(idle)
		result.TotalPotentialSavings = result.TotalPotentialSavings.Add(rec.PotentialSavingsINR)
		if rec.IsAnomaly {
			result.AnomalyCount++
		}
		if rec.Date.Before(result.StartDate) {
			result.StartDate = rec.Date
		}
		if rec.Date.After(result.EndDate) {
			result.EndDate = rec.Date
		}

		result.FinOps.TotalRequests += rec.RequestsPerDay
		result.FinOps.TotalUsageHours += rec.UsageHours
		if rec.CoveredByRISP {
			result.FinOps.CoveredUsageHours += rec.UsageHours
		}
		if rec.HasRequiredTags {
			result.FinOps.TaggedRecords++
		}
		result.FinOps.TotalBudget += rec.DailyBudgetINR.InexactFloat64()
		if rec.RISPUtilization > 0 {
			riUtilSum += rec.RISPUtilization
			riUtilCount++
		}

		dayKey := rec.Date.Format("2006-01-02")
		daily[dayKey] = daily[dayKey].Add(cost)
		monthKey := rec.Date.Format("2006-01")
		monthly[monthKey] = monthly[monthKey].Add(cost)

		svc, ok := serviceTotals[rec.Service]
		if !ok {
			svc = &models.ServiceSummary{Service: rec.Service}
			serviceTotals[rec.Service] = svc
		}
		svc.TotalCost = svc.TotalCost.Add(cost)
		svc.IdleCost = svc.IdleCost.Add(idle)
		svc.Records++

		reg, ok := regionTotals[rec.Region]
		if !ok {
			reg = &models.RegionalSummary{Region: rec.Region}
			regionTotals[rec.Region] = reg
		}
		reg.TotalCost = reg.TotalCost.Add(cost)
		reg.Records++

		if rec.CPUUtilization > 0 {
			utilSum += rec.CPUUtilization
			utilCount++
			serviceUtilSums[rec.Service] += rec.CPUUtilization
			serviceUtilCounts[rec.Service]++

			if rec.CPUUtilization < lowUtilizationThreshold {
				result.Opportunities = append(result.Opportunities, models.Opportunity{
					Date:             rec.Date,
					Service:          rec.Service,
					Region:           rec.Region,
					CPUUtilization:   rec.CPUUtilization,
					Cost:             cost,
					EstimatedSavings: cost.Mul(decimal.NewFromFloat(0.40)).Round(2),
					Recommendation:   "Downsize instance; sustained CPU utilization below 40%",
				})
			}
		}
	}

	if utilCount > 0 {
		result.AvgUtilization = round2(utilSum / float64(utilCount))
	}
	if riUtilCount > 0 {
		result.FinOps.AvgRISPUtilization = round2(riUtilSum / float64(riUtilCount))
	}

	result.DailyCosts = sortedDaily(daily)
	result.MonthlyCosts = sortedMonthly(monthly)
	result.ServiceSummaries = sortedServices(serviceTotals, serviceUtilSums, serviceUtilCounts, result.TotalCost)
	result.RegionalSummaries = sortedRegions(regionTotals, result.TotalCost)

	sort.Slice(result.Opportunities, func(i, j int) bool {
		return result.Opportunities[i].EstimatedSavings.GreaterThan(result.Opportunities[j].EstimatedSavings)
	})

	a.logger.WithFields(logrus.Fields{
		"records":       result.Records,
		"total_cost":    result.TotalCost.StringFixed(2),
		"idle_cost":     result.TotalIdleCost.StringFixed(2),
		"opportunities": len(result.Opportunities),
		"anomalies":     result.AnomalyCount,
	}).Info("Cost analysis complete")

	return result, nil
}

func recordCost(rec models.BillingRecord) decimal.Decimal {
	if rec.CostINR.IsPositive() {
		return rec.CostINR
	}
	return rec.CostUSD
}

// idleCost derives idle spend from utilization when the record does not
// carry one.
func idleCost(rec models.BillingRecord, cost decimal.Decimal) decimal.Decimal {
	if rec.IdleCostINR.IsPositive() {
		return rec.IdleCostINR
	}
	if rec.CPUUtilization <= 0 {
		return decimal.Zero
	}
	factor := decimal.NewFromFloat(1 - rec.CPUUtilization/100)
	return cost.Mul(factor).Round(2)
}

func sortedDaily(daily map[string]decimal.Decimal) []models.DailyCost {
	out := make([]models.DailyCost, 0, len(daily))
	for key, cost := range daily {
		date, _ := time.Parse("2006-01-02", key)
		out = append(out, models.DailyCost{Date: date, Cost: cost.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func sortedMonthly(monthly map[string]decimal.Decimal) []models.MonthlyCost {
	out := make([]models.MonthlyCost, 0, len(monthly))
	for key, cost := range monthly {
		out = append(out, models.MonthlyCost{Month: key, Cost: cost.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func sortedServices(totals map[string]*models.ServiceSummary, utilSums map[string]float64, utilCounts map[string]int, totalCost decimal.Decimal) []models.ServiceSummary {
	out := make([]models.ServiceSummary, 0, len(totals))
	for name, svc := range totals {
		if n := utilCounts[name]; n > 0 {
			svc.AvgUtilization = round2(utilSums[name] / float64(n))
		}
		svc.SharePct = sharePct(svc.TotalCost, totalCost)
		svc.TotalCost = svc.TotalCost.Round(2)
		svc.IdleCost = svc.IdleCost.Round(2)
		out = append(out, *svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalCost.GreaterThan(out[j].TotalCost) })
	return out
}

func sortedRegions(totals map[string]*models.RegionalSummary, totalCost decimal.Decimal) []models.RegionalSummary {
	out := make([]models.RegionalSummary, 0, len(totals))
	for _, reg := range totals {
		reg.SharePct = sharePct(reg.TotalCost, totalCost)
		reg.TotalCost = reg.TotalCost.Round(2)
		out = append(out, *reg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalCost.GreaterThan(out[j].TotalCost) })
	return out
}

func sharePct(part, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	pct, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}
