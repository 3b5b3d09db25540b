package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWasteRate(t *testing.T) {
	tests := []struct {
		name      string
		totalCost float64
		idleCost  float64
		expected  float64
	}{
		{"no idle spend", 1000, 0, 0},
		{"all idle spend", 1000, 1000, 100},
		{"partial idle spend", 1000, 150, 15},
		{"zero total cost", 0, 100, 0},
		{"negative total cost", -50, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WasteRate(tt.totalCost, tt.idleCost))
		})
	}
}

func TestUnitCost(t *testing.T) {
	assert.Equal(t, 0.05, UnitCost(500, 10000))
	assert.Equal(t, 0.0, UnitCost(500, 0))
	assert.Equal(t, 0.0, UnitCost(500, -1))
}

func TestBudgetVariance(t *testing.T) {
	result := BudgetVariance(110, 100)
	assert.Equal(t, 10.0, result.VarianceINR)
	assert.Equal(t, 10.0, result.VariancePct)

	under := BudgetVariance(90, 100)
	assert.Equal(t, -10.0, under.VarianceINR)
	assert.Equal(t, -10.0, under.VariancePct)

	noBudget := BudgetVariance(110, 0)
	assert.Equal(t, 110.0, noBudget.VarianceINR)
	assert.Equal(t, 0.0, noBudget.VariancePct)
}

func TestRISPCoverage(t *testing.T) {
	assert.Equal(t, 65.0, RISPCoverage(1000, 650))
	assert.Equal(t, 0.0, RISPCoverage(0, 650))
}

func TestRISPUtilization(t *testing.T) {
	assert.Equal(t, 92.0, RISPUtilization(100, 92))
	assert.Equal(t, 0.0, RISPUtilization(0, 92))
}

func TestTagCompliance(t *testing.T) {
	assert.Equal(t, 88.0, TagCompliance(100, 88))
	assert.Equal(t, 0.0, TagCompliance(0, 88))
}

func TestCAGR(t *testing.T) {
	// 1.1^2 = 1.21
	assert.InDelta(t, 10.0, CAGR(100, 121, 2), 0.01)
	assert.Equal(t, 0.0, CAGR(0, 121, 2))
	assert.Equal(t, 0.0, CAGR(100, 121, 0))
	assert.Less(t, CAGR(121, 100, 2), 0.0)
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{50, 50, 50}))
	assert.Equal(t, 0.0, CoefficientOfVariation(nil))
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{-10, -20}))

	// mean 20, population stddev 8.165
	cv := CoefficientOfVariation([]float64{10, 20, 30})
	assert.InDelta(t, 40.82, cv, 0.01)
}

func TestSeasonalityStrength(t *testing.T) {
	assert.Equal(t, 0.0, SeasonalityStrength(nil))
	assert.Equal(t, 0.0, SeasonalityStrength([]float64{5, 5, 5}))

	// variance 100 over denominator 101
	strength := SeasonalityStrength([]float64{-10, 10, -10, 10})
	assert.InDelta(t, 99.01, strength, 0.01)
}
