package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulbasith5/SSODL-MBA-PROJECT/internal/utils"
)

func TestNewMetricsEvaluator_LengthMismatch(t *testing.T) {
	_, err := NewMetricsEvaluator([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
	assert.IsType(t, &utils.ValidationError{}, err)

	_, err = NewMetricsEvaluatorWithInterval(
		[]float64{1, 2}, []float64{1, 2}, []float64{0}, []float64{3, 3},
	)
	require.Error(t, err)
	assert.IsType(t, &utils.ValidationError{}, err)
}

func TestMetricsEvaluator_PerfectForecast(t *testing.T) {
	actual := []float64{120.5, 98.2, 143.7, 110.0, 131.4}
	evaluator, err := NewMetricsEvaluator(actual, actual)
	require.NoError(t, err)

	mape, ok := evaluator.MAPE()
	require.True(t, ok)
	assert.Equal(t, 0.0, mape)

	smape, ok := evaluator.SMAPE()
	require.True(t, ok)
	assert.Equal(t, 0.0, smape)

	wape, ok := evaluator.WAPE()
	require.True(t, ok)
	assert.Equal(t, 0.0, wape)

	assert.Equal(t, 0.0, evaluator.MAE())
	assert.Equal(t, 0.0, evaluator.RMSE())
	assert.Equal(t, 0.0, evaluator.Bias())
	assert.Equal(t, 0.0, evaluator.BiasPercent())

	r2, ok := evaluator.R2()
	require.True(t, ok)
	assert.Equal(t, 1.0, r2)
}

func TestMetricsEvaluator_KnownValues(t *testing.T) {
	actual := []float64{100, 200, 400}
	predicted := []float64{110, 180, 440}
	evaluator, err := NewMetricsEvaluator(actual, predicted)
	require.NoError(t, err)

	mape, ok := evaluator.MAPE()
	require.True(t, ok)
	assert.InDelta(t, 10.0, mape, 0.01)

	wape, ok := evaluator.WAPE()
	require.True(t, ok)
	// (10+20+40)/700 * 100
	assert.InDelta(t, 10.0, wape, 0.01)

	assert.InDelta(t, 23.33, evaluator.MAE(), 0.01)

	mdape, ok := evaluator.MdAPE()
	require.True(t, ok)
	assert.InDelta(t, 10.0, mdape, 0.01)

	// (10 - 20 + 40) / 3
	assert.InDelta(t, 10.0, evaluator.Bias(), 0.01)
}

func TestMetricsEvaluator_ZeroActualsExcluded(t *testing.T) {
	actual := []float64{0, 100, 0, 200}
	predicted := []float64{50, 110, 30, 180}
	evaluator, err := NewMetricsEvaluator(actual, predicted)
	require.NoError(t, err)

	mape, ok := evaluator.MAPE()
	require.True(t, ok)
	assert.InDelta(t, 10.0, mape, 0.01)

	mdape, ok := evaluator.MdAPE()
	require.True(t, ok)
	assert.InDelta(t, 10.0, mdape, 0.01)
}

func TestMetricsEvaluator_UndefinedDenominators(t *testing.T) {
	actual := []float64{0, 0, 0}
	predicted := []float64{0, 0, 0}
	evaluator, err := NewMetricsEvaluator(actual, predicted)
	require.NoError(t, err)

	_, ok := evaluator.MAPE()
	assert.False(t, ok)
	_, ok = evaluator.SMAPE()
	assert.False(t, ok)
	_, ok = evaluator.WAPE()
	assert.False(t, ok)
	_, ok = evaluator.MdAPE()
	assert.False(t, ok)
	_, ok = evaluator.R2()
	assert.False(t, ok)
	assert.Equal(t, 0.0, evaluator.BiasPercent())
}

func TestMetricsEvaluator_RMSEPenalizesLargeErrors(t *testing.T) {
	actual := []float64{100, 100, 100, 100}
	predicted := []float64{100, 100, 100, 60}
	evaluator, err := NewMetricsEvaluator(actual, predicted)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, evaluator.MAE(), 0.01)
	assert.InDelta(t, 20.0, evaluator.RMSE(), 0.01)
}

func TestMetricsEvaluator_BiasSign(t *testing.T) {
	actual := []float64{100, 100}
	over := []float64{110, 120}
	under := []float64{90, 80}

	evaluator, err := NewMetricsEvaluator(actual, over)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, evaluator.Bias(), 0.01)
	assert.InDelta(t, 15.0, evaluator.BiasPercent(), 0.01)

	evaluator, err = NewMetricsEvaluator(actual, under)
	require.NoError(t, err)
	assert.InDelta(t, -15.0, evaluator.Bias(), 0.01)
	assert.InDelta(t, -15.0, evaluator.BiasPercent(), 0.01)
}

func TestMetricsEvaluator_PICP(t *testing.T) {
	actual := []float64{100, 200, 300, 400}
	predicted := []float64{100, 200, 300, 400}

	// No interval: undefined.
	evaluator, err := NewMetricsEvaluator(actual, predicted)
	require.NoError(t, err)
	_, ok := evaluator.PICP()
	assert.False(t, ok)

	narrowLower := []float64{90, 190, 310, 410}
	narrowUpper := []float64{110, 210, 320, 420}
	evaluator, err = NewMetricsEvaluatorWithInterval(actual, predicted, narrowLower, narrowUpper)
	require.NoError(t, err)
	narrow, ok := evaluator.PICP()
	require.True(t, ok)
	assert.InDelta(t, 50.0, narrow, 0.01)

	// Widening the interval never decreases coverage.
	wideLower := []float64{50, 150, 250, 350}
	wideUpper := []float64{150, 250, 350, 450}
	evaluator, err = NewMetricsEvaluatorWithInterval(actual, predicted, wideLower, wideUpper)
	require.NoError(t, err)
	wide, ok := evaluator.PICP()
	require.True(t, ok)
	assert.GreaterOrEqual(t, wide, narrow)
	assert.InDelta(t, 100.0, wide, 0.01)
}

func TestMetricsEvaluator_MASE(t *testing.T) {
	actual := []float64{100, 110, 120, 130}
	predicted := []float64{105, 115, 125, 135}
	evaluator, err := NewMetricsEvaluator(actual, predicted)
	require.NoError(t, err)

	naive := evaluator.NaiveErrors()
	require.Len(t, naive, 3)

	mase, ok := evaluator.MASE(naive)
	require.True(t, ok)
	// model MAE 5, naive MAE 10
	assert.InDelta(t, 0.5, mase, 0.001)

	// A constant series has zero naive MAE: undefined.
	constant, err := NewMetricsEvaluator([]float64{50, 50, 50}, []float64{60, 60, 60})
	require.NoError(t, err)
	_, ok = constant.MASE(constant.NaiveErrors())
	assert.False(t, ok)
}

func TestMetricsEvaluator_NegativeR2(t *testing.T) {
	actual := []float64{10, 20, 30}
	predicted := []float64{30, 10, 50}
	evaluator, err := NewMetricsEvaluator(actual, predicted)
	require.NoError(t, err)

	r2, ok := evaluator.R2()
	require.True(t, ok)
	assert.Less(t, r2, 0.0)
}

func TestMetricsEvaluator_EmptySeries(t *testing.T) {
	evaluator, err := NewMetricsEvaluator(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, evaluator.MAE())
	assert.Equal(t, 0.0, evaluator.RMSE())
	assert.Equal(t, 0.0, evaluator.Bias())
	_, ok := evaluator.MAPE()
	assert.False(t, ok)
	assert.Nil(t, evaluator.NaiveErrors())
}

func TestMetricsEvaluator_AllForecastMetrics(t *testing.T) {
	actual := []float64{100, 200, 300}
	predicted := []float64{110, 190, 310}
	lower := []float64{90, 180, 290}
	upper := []float64{120, 210, 330}
	evaluator, err := NewMetricsEvaluatorWithInterval(actual, predicted, lower, upper)
	require.NoError(t, err)

	metrics := evaluator.AllForecastMetrics()
	require.Len(t, metrics, 10)

	byName := map[string]bool{}
	for _, m := range metrics {
		byName[m.Name] = m.Defined
	}
	for _, name := range []string{
		MetricMAPE, MetricSMAPE, MetricWAPE, MetricMAE, MetricRMSE,
		MetricMdAPE, MetricR2, MetricBias, MetricBiasP, MetricPICP,
	} {
		defined, present := byName[name]
		assert.True(t, present, "missing metric %s", name)
		assert.True(t, defined, "metric %s should be defined", name)
	}
}
