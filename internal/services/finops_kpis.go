package services

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/models"
)

// FinOps KPI formulas used for cloud financial governance reporting.
//
// Each function is stateless and independently callable from its own scalar
// (or small-slice) inputs. Every ratio guards its denominator and falls back
// to 0 rather than producing NaN or Inf, so results stay reportable even for
// degenerate periods (empty accounts, zero budgets, unused commitments).

// WasteRate returns the percentage of total spend attributable to idle or
// underutilized capacity. 0 when totalCost is not positive.
func WasteRate(totalCost, idleCost float64) float64 {
	if totalCost <= 0 {
		return 0
	}
	return round2(idleCost / totalCost * 100)
}

// UnitCost returns cost per unit of work (request, transaction, GB,
// customer). 0 when totalUnits is not positive.
func UnitCost(totalCost, totalUnits float64) float64 {
	if totalUnits <= 0 {
		return 0
	}
	return round2(totalCost / totalUnits)
}

// BudgetVariance returns the absolute and percentage variance of actual
// against budgeted spend. Positive means over budget. The percentage is 0
// when the budget is not positive.
func BudgetVariance(actualCost, budgetedCost float64) models.BudgetVarianceResult {
	variance := actualCost - budgetedCost
	var pct float64
	if budgetedCost > 0 {
		pct = variance / budgetedCost * 100
	}
	return models.BudgetVarianceResult{
		VarianceINR: round2(variance),
		VariancePct: round2(pct),
	}
}

// RISPCoverage returns the percentage of usage hours backed by a Reserved
// Instance or Savings Plan commitment. 0 when totalHours is not positive.
func RISPCoverage(totalHours, coveredHours float64) float64 {
	if totalHours <= 0 {
		return 0
	}
	return round2(coveredHours / totalHours * 100)
}

// RISPUtilization returns the percentage of purchased commitment hours
// actually consumed. 0 when purchasedHours is not positive.
func RISPUtilization(purchasedHours, usedHours float64) float64 {
	if purchasedHours <= 0 {
		return 0
	}
	return round2(usedHours / purchasedHours * 100)
}

// TagCompliance returns the percentage of resources carrying the required
// cost-allocation tags. 0 when totalResources is not positive.
func TagCompliance(totalResources, taggedResources float64) float64 {
	if totalResources <= 0 {
		return 0
	}
	return round2(taggedResources / totalResources * 100)
}

// CAGR returns the compound annual growth rate of spend between an initial
// and final value over numYears. 0 when the initial value or the year count
// is not positive.
func CAGR(initialCost, finalCost, numYears float64) float64 {
	if initialCost <= 0 || numYears <= 0 {
		return 0
	}
	return round2((math.Pow(finalCost/initialCost, 1/numYears) - 1) * 100)
}

// CoefficientOfVariation returns spend volatility as the population standard
// deviation over the mean, in percent. 0 when the mean is not positive.
func CoefficientOfVariation(costs []float64) float64 {
	if len(costs) == 0 {
		return 0
	}
	mean := stat.Mean(costs, nil)
	if mean <= 0 {
		return 0
	}
	std := math.Sqrt(stat.PopVariance(costs, nil))
	return round2(std / mean * 100)
}

// SeasonalityStrength returns the share of variance explained by a seasonal
// component. The denominator intentionally adds a unit term to the seasonal
// variance rather than using the full decomposition's total variance.
func SeasonalityStrength(seasonal []float64) float64 {
	if len(seasonal) == 0 {
		return 0
	}
	varSeasonal := stat.PopVariance(seasonal, nil)
	return round2(varSeasonal / (varSeasonal + 1) * 100)
}
